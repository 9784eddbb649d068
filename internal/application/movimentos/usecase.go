// Package movimentos contém os casos de uso do ledger de movimentos:
// registo de eventos (append-only) e consulta filtrada.
package movimentos

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// RegistarMovimentoUseCase valida e grava eventos no ledger.
//
// O registo é puramente aditivo: nenhum estado derivado é recalculado de forma
// síncrona (o estado é sempre computado na leitura). Não há lock transacional
// contra uma segunda saida com afetação ainda aberta — é um invariante de
// workflow do chamador, que deve consultar o estado atual antes de emitir a
// saida; o resolver tolera o histórico resultante.
type RegistarMovimentoUseCase struct {
	movRepo         repository.MovimentoRepository
	equipamentoRepo repository.EquipamentoRepository
	viaturaRepo     repository.ViaturaRepository
	materialRepo    repository.MaterialRepository
	obraRepo        repository.ObraRepository
}

// NewRegistarMovimentoUseCase constrói o caso de uso.
func NewRegistarMovimentoUseCase(
	movRepo repository.MovimentoRepository,
	equipamentoRepo repository.EquipamentoRepository,
	viaturaRepo repository.ViaturaRepository,
	materialRepo repository.MaterialRepository,
	obraRepo repository.ObraRepository,
) *RegistarMovimentoUseCase {
	return &RegistarMovimentoUseCase{
		movRepo:         movRepo,
		equipamentoRepo: equipamentoRepo,
		viaturaRepo:     viaturaRepo,
		materialRepo:    materialRepo,
		obraRepo:        obraRepo,
	}
}

// Registar valida o input consoante o tipo de movimento e faz o append ao
// ledger. Em caso de erro de validação nada é persistido.
func (uc *RegistarMovimentoUseCase) Registar(ctx context.Context, actorID string, in dto.RegistarMovimentoRequest) (*dto.MovimentoResponse, error) {
	if !entity.TipoRecursoValido(in.TipoRecurso) || in.RecursoID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Validação cruzada tipo de movimento × tipo de recurso × campos.
	switch in.TipoMovimento {
	case entity.TipoMovimentoSaida:
		if in.TipoRecurso == entity.TipoRecursoMaterial {
			return nil, domain.ErrInvalidInput
		}
		if in.ObraID == nil || *in.ObraID == "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.TipoMovimentoDevolucao:
		if in.TipoRecurso == entity.TipoRecursoMaterial {
			return nil, domain.ErrInvalidInput
		}
	case entity.TipoMovimentoEntrada, entity.TipoMovimentoSaidaStock:
		if in.TipoRecurso != entity.TipoRecursoMaterial {
			return nil, domain.ErrInvalidInput
		}
		if in.Quantidade == nil || !in.Quantidade.IsPositive() {
			return nil, domain.ErrQuantidadeInvalida
		}
	case entity.TipoMovimentoLeituraKM:
		if in.TipoRecurso != entity.TipoRecursoViatura {
			return nil, domain.ErrInvalidInput
		}
		if in.Quilometragem == nil || !in.Quilometragem.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	// O recurso tem de resolver no registo de recursos.
	if err := uc.verificarRecurso(in.TipoRecurso, in.RecursoID); err != nil {
		return nil, err
	}
	if in.ObraID != nil && *in.ObraID != "" {
		obra, err := uc.obraRepo.GetByID(*in.ObraID)
		if err != nil {
			return nil, err
		}
		if obra == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now().UTC()
	data := now
	if in.Data != nil {
		data = in.Data.UTC()
	}

	mov := &entity.Movimento{
		ID:            uuid.New().String(),
		TipoRecurso:   in.TipoRecurso,
		RecursoID:     in.RecursoID,
		TipoMovimento: in.TipoMovimento,
		ObraID:        in.ObraID,
		Quantidade:    in.Quantidade,
		Quilometragem: in.Quilometragem,
		Data:          data,
		CriadoEm:      now,
		CriadoPor:     actorID,
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	resp := ToMovimentoResponse(mov)
	return &resp, nil
}

// Listar devolve a fatia filtrada do ledger, ordenada por data ascendente.
func (uc *RegistarMovimentoUseCase) Listar(ctx context.Context, in dto.FiltroMovimentosRequest) ([]dto.MovimentoResponse, error) {
	if in.Mes != 0 && in.Ano == 0 {
		return nil, domain.ErrInvalidInput
	}
	filtro := repository.FiltroMovimentos{
		TipoRecurso:   in.TipoRecurso,
		RecursoID:     in.RecursoID,
		TipoMovimento: in.TipoMovimento,
		ObraID:        in.ObraID,
		Ano:           in.Ano,
		Mes:           in.Mes,
	}
	var err error
	if filtro.DataInicio, err = ParseData(in.DataInicio, false); err != nil {
		return nil, err
	}
	if filtro.DataFim, err = ParseData(in.DataFim, true); err != nil {
		return nil, err
	}

	movs, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, ToMovimentoResponse(m))
	}
	return out, nil
}

func (uc *RegistarMovimentoUseCase) verificarRecurso(tipoRecurso, recursoID string) error {
	switch tipoRecurso {
	case entity.TipoRecursoEquipamento:
		e, err := uc.equipamentoRepo.GetByID(recursoID)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
	case entity.TipoRecursoViatura:
		v, err := uc.viaturaRepo.GetByID(recursoID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
	case entity.TipoRecursoMaterial:
		m, err := uc.materialRepo.GetByID(recursoID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// ToMovimentoResponse converte a entidade para o DTO de resposta.
func ToMovimentoResponse(m *entity.Movimento) dto.MovimentoResponse {
	return dto.MovimentoResponse{
		ID:            m.ID,
		TipoRecurso:   m.TipoRecurso,
		RecursoID:     m.RecursoID,
		TipoMovimento: m.TipoMovimento,
		ObraID:        m.ObraID,
		Quantidade:    m.Quantidade,
		Quilometragem: m.Quilometragem,
		Data:          m.Data,
		CriadoEm:      m.CriadoEm,
		CriadoPor:     m.CriadoPor,
	}
}

// ParseData interpreta uma data YYYY-MM-DD de um filtro de consulta.
// Com fim=true devolve a meia-noite do dia seguinte, para servir de limite
// superior exclusivo que cobre o dia final completo, incluindo eventos com
// componente horária fracionária.
func ParseData(s string, fim bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if fim {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
