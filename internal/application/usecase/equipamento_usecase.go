// Package usecase contém os casos de uso CRUD do registo de recursos:
// equipamentos, viaturas, materiais e obras.
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

// EquipamentoUseCase casos de uso de equipamentos.
type EquipamentoUseCase struct {
	repo repository.EquipamentoRepository
}

// NewEquipamentoUseCase constrói o caso de uso.
func NewEquipamentoUseCase(repo repository.EquipamentoRepository) *EquipamentoUseCase {
	return &EquipamentoUseCase{repo: repo}
}

// Create regista um equipamento novo. Código duplicado devolve ErrDuplicate.
func (uc *EquipamentoUseCase) Create(ctx context.Context, in dto.CreateEquipamentoRequest) (*dto.EquipamentoResponse, error) {
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now().UTC()
	e := &entity.Equipamento{
		ID:                  uuid.New().String(),
		Codigo:              in.Codigo,
		Descricao:           in.Descricao,
		Marca:               in.Marca,
		Modelo:              in.Modelo,
		NumeroSerie:         in.NumeroSerie,
		ValidadeCertificado: in.ValidadeCertificado,
		ManualURL:           in.ManualURL,
		CertificadoURL:      in.CertificadoURL,
		FichaManutencaoURL:  in.FichaManutencaoURL,
		EmManutencao:        in.EmManutencao,
		DescricaoAvaria:     in.DescricaoAvaria,
		Ativo:               true,
		CriadoEm:            now,
		AtualizadoEm:        now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	resp := ToEquipamentoResponse(e)
	return &resp, nil
}

// GetByID devolve um equipamento ou ErrNotFound.
func (uc *EquipamentoUseCase) GetByID(ctx context.Context, id string) (*dto.EquipamentoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToEquipamentoResponse(e)
	return &resp, nil
}

// Update aplica uma atualização parcial: campos nil ficam como estavam.
func (uc *EquipamentoUseCase) Update(ctx context.Context, id string, in dto.UpdateEquipamentoRequest) (*dto.EquipamentoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	if in.Codigo != nil && *in.Codigo != e.Codigo {
		outro, err := uc.repo.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if outro != nil {
			return nil, domain.ErrDuplicate
		}
		e.Codigo = *in.Codigo
	}
	if in.Descricao != nil {
		e.Descricao = *in.Descricao
	}
	if in.Marca != nil {
		e.Marca = *in.Marca
	}
	if in.Modelo != nil {
		e.Modelo = *in.Modelo
	}
	if in.NumeroSerie != nil {
		e.NumeroSerie = *in.NumeroSerie
	}
	if in.ValidadeCertificado != nil {
		e.ValidadeCertificado = in.ValidadeCertificado
	}
	if in.ManualURL != nil {
		e.ManualURL = *in.ManualURL
	}
	if in.CertificadoURL != nil {
		e.CertificadoURL = *in.CertificadoURL
	}
	if in.FichaManutencaoURL != nil {
		e.FichaManutencaoURL = *in.FichaManutencaoURL
	}
	if in.EmManutencao != nil {
		e.EmManutencao = *in.EmManutencao
	}
	if in.DescricaoAvaria != nil {
		e.DescricaoAvaria = *in.DescricaoAvaria
	}
	if in.Ativo != nil {
		e.Ativo = *in.Ativo
	}
	e.AtualizadoEm = time.Now().UTC()

	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	resp := ToEquipamentoResponse(e)
	return &resp, nil
}

// Manutencao altera apenas o estado de manutenção do equipamento, sem tocar
// em mais nenhum campo do registo.
func (uc *EquipamentoUseCase) Manutencao(ctx context.Context, id string, in dto.ManutencaoRequest) (*dto.EquipamentoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateManutencao(id, in.EmManutencao, in.DescricaoAvaria); err != nil {
		return nil, err
	}
	e.EmManutencao = in.EmManutencao
	e.DescricaoAvaria = in.DescricaoAvaria
	resp := ToEquipamentoResponse(e)
	return &resp, nil
}

// List devolve equipamentos, opcionalmente filtrados por pesquisa textual.
func (uc *EquipamentoUseCase) List(ctx context.Context, q string, page dto.PageRequest) ([]dto.EquipamentoResponse, error) {
	page.DefaultPage()
	lista, err := uc.repo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipamentoResponse, 0, len(lista))
	for _, e := range lista {
		out = append(out, ToEquipamentoResponse(e))
	}
	return out, nil
}

// Delete desativa um equipamento (soft delete); o histórico no ledger mantém-se.
func (uc *EquipamentoUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToEquipamentoResponse converte a entidade para o DTO de resposta.
func ToEquipamentoResponse(e *entity.Equipamento) dto.EquipamentoResponse {
	return dto.EquipamentoResponse{
		ID:                  e.ID,
		Codigo:              e.Codigo,
		Descricao:           e.Descricao,
		Marca:               e.Marca,
		Modelo:              e.Modelo,
		NumeroSerie:         e.NumeroSerie,
		ValidadeCertificado: e.ValidadeCertificado,
		ManualURL:           e.ManualURL,
		CertificadoURL:      e.CertificadoURL,
		FichaManutencaoURL:  e.FichaManutencaoURL,
		EmManutencao:        e.EmManutencao,
		DescricaoAvaria:     e.DescricaoAvaria,
		Ativo:               e.Ativo,
		CriadoEm:            e.CriadoEm,
		AtualizadoEm:        e.AtualizadoEm,
	}
}
