package movimentos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: um ledger em memória e registos com um único recurso de cada
// tipo. Os métodos fora do caminho do use case rebentam se forem chamados.
// ──────────────────────────────────────────────────────────────────────────────

type memLedger struct {
	seq     int64
	eventos []*entity.Movimento
}

func (r *memLedger) Create(m *entity.Movimento) error {
	r.seq++
	m.Seq = r.seq
	r.eventos = append(r.eventos, m)
	return nil
}

func (r *memLedger) GetByID(id string) (*entity.Movimento, error) {
	for _, m := range r.eventos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memLedger) List(f repository.FiltroMovimentos) ([]*entity.Movimento, error) {
	out := make([]*entity.Movimento, 0)
	for _, m := range r.eventos {
		if f.TipoRecurso != "" && m.TipoRecurso != f.TipoRecurso {
			continue
		}
		if f.RecursoID != "" && m.RecursoID != f.RecursoID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type soGetEquipamento struct {
	repository.EquipamentoRepository
	item *entity.Equipamento
}

func (r soGetEquipamento) GetByID(id string) (*entity.Equipamento, error) {
	if r.item != nil && r.item.ID == id {
		return r.item, nil
	}
	return nil, nil
}

type soGetViatura struct {
	repository.ViaturaRepository
	item *entity.Viatura
}

func (r soGetViatura) GetByID(id string) (*entity.Viatura, error) {
	if r.item != nil && r.item.ID == id {
		return r.item, nil
	}
	return nil, nil
}

type soGetMaterial struct {
	repository.MaterialRepository
	item *entity.Material
}

func (r soGetMaterial) GetByID(id string) (*entity.Material, error) {
	if r.item != nil && r.item.ID == id {
		return r.item, nil
	}
	return nil, nil
}

type soGetObra struct {
	repository.ObraRepository
	item *entity.Obra
}

func (r soGetObra) GetByID(id string) (*entity.Obra, error) {
	if r.item != nil && r.item.ID == id {
		return r.item, nil
	}
	return nil, nil
}

func novoUseCase() (*movimentos.RegistarMovimentoUseCase, *memLedger) {
	ledgerRepo := &memLedger{}
	uc := movimentos.NewRegistarMovimentoUseCase(
		ledgerRepo,
		soGetEquipamento{item: &entity.Equipamento{ID: "EQ1", Codigo: "BET-001", Ativo: true}},
		soGetViatura{item: &entity.Viatura{ID: "VT1", Matricula: "AA-01-BB", Ativo: true}},
		soGetMaterial{item: &entity.Material{ID: "MAT1", Codigo: "CIM-001", Ativo: true}},
		soGetObra{item: &entity.Obra{ID: "OB1", Codigo: "OBR-001", Ativo: true}},
	)
	return uc, ledgerRepo
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Registar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistar_SaidaDeEquipamento(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	out, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: entity.TipoMovimentoSaida,
		ObraID:        ptr("OB1"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "user-1", out.CriadoPor)
	require.NotNil(t, out.ObraID)
	assert.Equal(t, "OB1", *out.ObraID)
	require.Len(t, ledgerRepo.eventos, 1)
	assert.Equal(t, int64(1), ledgerRepo.eventos[0].Seq)
}

func TestRegistar_SaidaSemObra_Invalida(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: entity.TipoMovimentoSaida,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, ledgerRepo.eventos, "nada deve ser persistido em caso de erro")
}

func TestRegistar_SaidaDeMaterial_Invalida(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoMaterial,
		RecursoID:     "MAT1",
		TipoMovimento: entity.TipoMovimentoSaida,
		ObraID:        ptr("OB1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"materiais não têm afetação, movem-se por entrada/saida_stock")
}

func TestRegistar_ObraDesconhecida_NotFound(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: entity.TipoMovimentoSaida,
		ObraID:        ptr("nao-existe"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ledgerRepo.eventos)
}

func TestRegistar_RecursoDesconhecido_NotFound(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "nao-existe",
		TipoMovimento: entity.TipoMovimentoSaida,
		ObraID:        ptr("OB1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ledgerRepo.eventos)
}

func TestRegistar_EntradaDeMaterial(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	out, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoMaterial,
		RecursoID:     "MAT1",
		TipoMovimento: entity.TipoMovimentoEntrada,
		Quantidade:    ptr(decimal.NewFromInt(100)),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Quantidade)
	assert.True(t, out.Quantidade.Equal(decimal.NewFromInt(100)))
	require.Len(t, ledgerRepo.eventos, 1)
}

func TestRegistar_QuantidadeNaoPositiva_Invalida(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	casos := []*decimal.Decimal{
		nil,
		ptr(decimal.Zero),
		ptr(decimal.NewFromInt(-5)),
	}
	for _, quantidade := range casos {
		_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
			TipoRecurso:   entity.TipoRecursoMaterial,
			RecursoID:     "MAT1",
			TipoMovimento: entity.TipoMovimentoSaidaStock,
			Quantidade:    quantidade,
		})
		assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida)
	}
	assert.Empty(t, ledgerRepo.eventos)
}

func TestRegistar_EntradaDeEquipamento_Invalida(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: entity.TipoMovimentoEntrada,
		Quantidade:    ptr(decimal.NewFromInt(10)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistar_LeituraKM(t *testing.T) {
	uc, _ := novoUseCase()

	out, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoViatura,
		RecursoID:     "VT1",
		TipoMovimento: entity.TipoMovimentoLeituraKM,
		Quilometragem: ptr(decimal.NewFromInt(123456)),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Quilometragem)
	assert.True(t, out.Quilometragem.Equal(decimal.NewFromInt(123456)))
}

func TestRegistar_LeituraKMDeEquipamento_Invalida(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: entity.TipoMovimentoLeituraKM,
		Quilometragem: ptr(decimal.NewFromInt(100)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistar_TipoMovimentoDesconhecido_Invalido(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: "transferencia",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistar_DataPorOmissao(t *testing.T) {
	uc, ledgerRepo := novoUseCase()

	antes := time.Now().UTC()
	_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: entity.TipoMovimentoDevolucao,
	})
	require.NoError(t, err)
	require.Len(t, ledgerRepo.eventos, 1)
	assert.False(t, ledgerRepo.eventos[0].Data.Before(antes))
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_MesSemAno_Invalido(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Listar(context.Background(), dto.FiltroMovimentosRequest{Mes: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListar_FiltroPorRecurso(t *testing.T) {
	uc, _ := novoUseCase()

	for _, recursoID := range []string{"EQ1", "EQ1", "VT1"} {
		tipoRecurso := entity.TipoRecursoEquipamento
		if recursoID == "VT1" {
			tipoRecurso = entity.TipoRecursoViatura
		}
		_, err := uc.Registar(context.Background(), "user-1", dto.RegistarMovimentoRequest{
			TipoRecurso:   tipoRecurso,
			RecursoID:     recursoID,
			TipoMovimento: entity.TipoMovimentoDevolucao,
		})
		require.NoError(t, err)
	}

	out, err := uc.Listar(context.Background(), dto.FiltroMovimentosRequest{RecursoID: "EQ1"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestParseData_LimitesDeJanela(t *testing.T) {
	inicio, err := movimentos.ParseData("2026-03-15", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *inicio)

	// O fim é a meia-noite do dia seguinte, exclusivo: um evento no último
	// segundo do dia (mesmo com fração) ainda pertence à janela.
	fim, err := movimentos.ParseData("2026-03-15", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), *fim)

	ultimoSegundo := time.Date(2026, 3, 15, 23, 59, 59, 500_000_000, time.UTC)
	assert.True(t, ultimoSegundo.Before(*fim))

	vazio, err := movimentos.ParseData("", true)
	require.NoError(t, err)
	assert.Nil(t, vazio)

	_, err = movimentos.ParseData("15-03-2026", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
