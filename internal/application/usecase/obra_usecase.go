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

// ObraUseCase casos de uso de obras.
type ObraUseCase struct {
	repo repository.ObraRepository
}

// NewObraUseCase constrói o caso de uso.
func NewObraUseCase(repo repository.ObraRepository) *ObraUseCase {
	return &ObraUseCase{repo: repo}
}

// Create regista uma obra nova. Código duplicado devolve ErrDuplicate.
// Estado omitido fica "ativa".
func (uc *ObraUseCase) Create(ctx context.Context, in dto.CreateObraRequest) (*dto.ObraResponse, error) {
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	estado := in.Estado
	if estado == "" {
		estado = entity.ObraAtiva
	}
	now := time.Now().UTC()
	o := &entity.Obra{
		ID:           uuid.New().String(),
		Codigo:       in.Codigo,
		Nome:         in.Nome,
		Localizacao:  in.Localizacao,
		Estado:       estado,
		Ativo:        true,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	resp := ToObraResponse(o)
	return &resp, nil
}

// GetByID devolve uma obra ou ErrNotFound.
func (uc *ObraUseCase) GetByID(ctx context.Context, id string) (*dto.ObraResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToObraResponse(o)
	return &resp, nil
}

// Update aplica uma atualização parcial: campos nil ficam como estavam.
func (uc *ObraUseCase) Update(ctx context.Context, id string, in dto.UpdateObraRequest) (*dto.ObraResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	if in.Codigo != nil && *in.Codigo != o.Codigo {
		outra, err := uc.repo.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if outra != nil {
			return nil, domain.ErrDuplicate
		}
		o.Codigo = *in.Codigo
	}
	if in.Nome != nil {
		o.Nome = *in.Nome
	}
	if in.Localizacao != nil {
		o.Localizacao = *in.Localizacao
	}
	if in.Estado != nil {
		o.Estado = *in.Estado
	}
	if in.Ativo != nil {
		o.Ativo = *in.Ativo
	}
	o.AtualizadoEm = time.Now().UTC()

	if err := uc.repo.Update(o); err != nil {
		return nil, err
	}
	resp := ToObraResponse(o)
	return &resp, nil
}

// List devolve obras, opcionalmente filtradas por pesquisa textual.
func (uc *ObraUseCase) List(ctx context.Context, q string, page dto.PageRequest) ([]dto.ObraResponse, error) {
	page.DefaultPage()
	lista, err := uc.repo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ObraResponse, 0, len(lista))
	for _, o := range lista {
		out = append(out, ToObraResponse(o))
	}
	return out, nil
}

// Delete desativa uma obra (soft delete); os movimentos que a referenciam
// permanecem intocados no ledger.
func (uc *ObraUseCase) Delete(ctx context.Context, id string) error {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToObraResponse converte a entidade para o DTO de resposta.
func ToObraResponse(o *entity.Obra) dto.ObraResponse {
	return dto.ObraResponse{
		ID:           o.ID,
		Codigo:       o.Codigo,
		Nome:         o.Nome,
		Localizacao:  o.Localizacao,
		Estado:       o.Estado,
		Ativo:        o.Ativo,
		CriadoEm:     o.CriadoEm,
		AtualizadoEm: o.AtualizadoEm,
	}
}
