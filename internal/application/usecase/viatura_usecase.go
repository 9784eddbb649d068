package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// ViaturaUseCase casos de uso de viaturas.
type ViaturaUseCase struct {
	repo repository.ViaturaRepository
}

// NewViaturaUseCase constrói o caso de uso.
func NewViaturaUseCase(repo repository.ViaturaRepository) *ViaturaUseCase {
	return &ViaturaUseCase{repo: repo}
}

// Create regista uma viatura nova. Matrícula duplicada devolve ErrDuplicate.
func (uc *ViaturaUseCase) Create(ctx context.Context, in dto.CreateViaturaRequest) (*dto.ViaturaResponse, error) {
	existente, err := uc.repo.GetByMatricula(in.Matricula)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now().UTC()
	v := &entity.Viatura{
		ID:               uuid.New().String(),
		Matricula:        in.Matricula,
		Marca:            in.Marca,
		Modelo:           in.Modelo,
		Ano:              in.Ano,
		ValidadeInspecao: in.ValidadeInspecao,
		ValidadeSeguro:   in.ValidadeSeguro,
		EmManutencao:     in.EmManutencao,
		DescricaoAvaria:  in.DescricaoAvaria,
		Ativo:            true,
		CriadoEm:         now,
		AtualizadoEm:     now,
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	resp := ToViaturaResponse(v)
	return &resp, nil
}

// GetByID devolve uma viatura ou ErrNotFound.
func (uc *ViaturaUseCase) GetByID(ctx context.Context, id string) (*dto.ViaturaResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToViaturaResponse(v)
	return &resp, nil
}

// Update aplica uma atualização parcial: campos nil ficam como estavam.
func (uc *ViaturaUseCase) Update(ctx context.Context, id string, in dto.UpdateViaturaRequest) (*dto.ViaturaResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}

	if in.Matricula != nil && *in.Matricula != v.Matricula {
		outra, err := uc.repo.GetByMatricula(*in.Matricula)
		if err != nil {
			return nil, err
		}
		if outra != nil {
			return nil, domain.ErrDuplicate
		}
		v.Matricula = *in.Matricula
	}
	if in.Marca != nil {
		v.Marca = *in.Marca
	}
	if in.Modelo != nil {
		v.Modelo = *in.Modelo
	}
	if in.Ano != nil {
		v.Ano = *in.Ano
	}
	if in.ValidadeInspecao != nil {
		v.ValidadeInspecao = in.ValidadeInspecao
	}
	if in.ValidadeSeguro != nil {
		v.ValidadeSeguro = in.ValidadeSeguro
	}
	if in.EmManutencao != nil {
		v.EmManutencao = *in.EmManutencao
	}
	if in.DescricaoAvaria != nil {
		v.DescricaoAvaria = *in.DescricaoAvaria
	}
	if in.Ativo != nil {
		v.Ativo = *in.Ativo
	}
	v.AtualizadoEm = time.Now().UTC()

	if err := uc.repo.Update(v); err != nil {
		return nil, err
	}
	resp := ToViaturaResponse(v)
	return &resp, nil
}

// Manutencao altera apenas o estado de manutenção da viatura.
func (uc *ViaturaUseCase) Manutencao(ctx context.Context, id string, in dto.ManutencaoRequest) (*dto.ViaturaResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateManutencao(id, in.EmManutencao, in.DescricaoAvaria); err != nil {
		return nil, err
	}
	v.EmManutencao = in.EmManutencao
	v.DescricaoAvaria = in.DescricaoAvaria
	resp := ToViaturaResponse(v)
	return &resp, nil
}

// List devolve viaturas, opcionalmente filtradas por pesquisa textual.
func (uc *ViaturaUseCase) List(ctx context.Context, q string, page dto.PageRequest) ([]dto.ViaturaResponse, error) {
	page.DefaultPage()
	lista, err := uc.repo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ViaturaResponse, 0, len(lista))
	for _, v := range lista {
		out = append(out, ToViaturaResponse(v))
	}
	return out, nil
}

// Delete desativa uma viatura (soft delete).
func (uc *ViaturaUseCase) Delete(ctx context.Context, id string) error {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToViaturaResponse converte a entidade para o DTO de resposta.
func ToViaturaResponse(v *entity.Viatura) dto.ViaturaResponse {
	return dto.ViaturaResponse{
		ID:               v.ID,
		Matricula:        v.Matricula,
		Marca:            v.Marca,
		Modelo:           v.Modelo,
		Ano:              v.Ano,
		ValidadeInspecao: v.ValidadeInspecao,
		ValidadeSeguro:   v.ValidadeSeguro,
		EmManutencao:     v.EmManutencao,
		DescricaoAvaria:  v.DescricaoAvaria,
		Ativo:            v.Ativo,
		CriadoEm:         v.CriadoEm,
		AtualizadoEm:     v.AtualizadoEm,
	}
}
