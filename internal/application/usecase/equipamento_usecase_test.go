package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
)

// fake em memória só com o necessário para estes testes.
type memEquipamentos struct {
	itens map[string]*entity.Equipamento
}

func newMemEquipamentos() *memEquipamentos {
	return &memEquipamentos{itens: make(map[string]*entity.Equipamento)}
}

func (r *memEquipamentos) Create(e *entity.Equipamento) error {
	r.itens[e.ID] = e
	return nil
}

func (r *memEquipamentos) GetByID(id string) (*entity.Equipamento, error) {
	return r.itens[id], nil
}

func (r *memEquipamentos) GetByCodigo(codigo string) (*entity.Equipamento, error) {
	for _, e := range r.itens {
		if e.Codigo == codigo {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memEquipamentos) Update(e *entity.Equipamento) error {
	r.itens[e.ID] = e
	return nil
}

func (r *memEquipamentos) UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error {
	e := r.itens[id]
	e.EmManutencao = emManutencao
	e.DescricaoAvaria = descricaoAvaria
	return nil
}

func (r *memEquipamentos) List(q string, limit, offset int) ([]*entity.Equipamento, error) {
	return r.ListAtivos()
}

func (r *memEquipamentos) ListAtivos() ([]*entity.Equipamento, error) {
	out := make([]*entity.Equipamento, 0, len(r.itens))
	for _, e := range r.itens {
		if e.Ativo {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEquipamentos) Delete(id string) error {
	r.itens[id].Ativo = false
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestEquipamento_CreateDuplicado(t *testing.T) {
	uc := usecase.NewEquipamentoUseCase(newMemEquipamentos())

	_, err := uc.Create(context.Background(), dto.CreateEquipamentoRequest{
		Codigo: "BET-001", Descricao: "Betoneira",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateEquipamentoRequest{
		Codigo: "BET-001", Descricao: "Outra betoneira",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEquipamento_UpdateParcial(t *testing.T) {
	uc := usecase.NewEquipamentoUseCase(newMemEquipamentos())

	criado, err := uc.Create(context.Background(), dto.CreateEquipamentoRequest{
		Codigo: "BET-001", Descricao: "Betoneira", Marca: "Imer",
	})
	require.NoError(t, err)

	atualizado, err := uc.Update(context.Background(), criado.ID, dto.UpdateEquipamentoRequest{
		Descricao: ptr("Betoneira 250L"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Betoneira 250L", atualizado.Descricao)
	assert.Equal(t, "Imer", atualizado.Marca, "campos nil não são alterados")
	assert.Equal(t, "BET-001", atualizado.Codigo)
}

// O update de manutenção só toca em em_manutencao e descricao_avaria.
func TestEquipamento_ManutencaoParcial(t *testing.T) {
	repo := newMemEquipamentos()
	uc := usecase.NewEquipamentoUseCase(repo)

	criado, err := uc.Create(context.Background(), dto.CreateEquipamentoRequest{
		Codigo: "BET-001", Descricao: "Betoneira", Marca: "Imer",
	})
	require.NoError(t, err)

	out, err := uc.Manutencao(context.Background(), criado.ID, dto.ManutencaoRequest{
		EmManutencao: true, DescricaoAvaria: "motor avariado",
	})
	require.NoError(t, err)

	assert.True(t, out.EmManutencao)
	assert.Equal(t, "motor avariado", out.DescricaoAvaria)
	assert.Equal(t, "Imer", repo.itens[criado.ID].Marca)
	assert.Equal(t, "Betoneira", repo.itens[criado.ID].Descricao)
}

func TestEquipamento_GetDesconhecido_NotFound(t *testing.T) {
	uc := usecase.NewEquipamentoUseCase(newMemEquipamentos())

	_, err := uc.GetByID(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEquipamento_Delete_SoftDelete(t *testing.T) {
	repo := newMemEquipamentos()
	uc := usecase.NewEquipamentoUseCase(repo)

	criado, err := uc.Create(context.Background(), dto.CreateEquipamentoRequest{
		Codigo: "BET-001", Descricao: "Betoneira",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), criado.ID))
	assert.False(t, repo.itens[criado.ID].Ativo, "o registo fica inativo, não é removido")
}
