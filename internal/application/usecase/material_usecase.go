package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// MaterialUseCase casos de uso de materiais. As respostas incluem o stock
// atual, derivado do ledger no momento da leitura.
type MaterialUseCase struct {
	repo    repository.MaterialRepository
	movRepo repository.MovimentoRepository
}

// NewMaterialUseCase constrói o caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, movRepo repository.MovimentoRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, movRepo: movRepo}
}

// Create regista um material novo. Código duplicado devolve ErrDuplicate.
// O stock nasce a zero; só entradas no ledger o alteram.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now().UTC()
	m := &entity.Material{
		ID:           uuid.New().String(),
		Codigo:       in.Codigo,
		Descricao:    in.Descricao,
		Unidade:      in.Unidade,
		StockMinimo:  in.StockMinimo,
		Ativo:        true,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	resp := uc.toResponse(m, decimal.Zero)
	return &resp, nil
}

// GetByID devolve um material ou ErrNotFound.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.stockAtual(id)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(m, stock)
	return &resp, nil
}

// Update aplica uma atualização parcial: campos nil ficam como estavam.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	if in.Codigo != nil && *in.Codigo != m.Codigo {
		outro, err := uc.repo.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if outro != nil {
			return nil, domain.ErrDuplicate
		}
		m.Codigo = *in.Codigo
	}
	if in.Descricao != nil {
		m.Descricao = *in.Descricao
	}
	if in.Unidade != nil {
		m.Unidade = *in.Unidade
	}
	if in.StockMinimo != nil {
		m.StockMinimo = *in.StockMinimo
	}
	if in.Ativo != nil {
		m.Ativo = *in.Ativo
	}
	m.AtualizadoEm = time.Now().UTC()

	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	stock, err := uc.stockAtual(id)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(m, stock)
	return &resp, nil
}

// List devolve materiais, opcionalmente filtrados por pesquisa textual, cada
// um com o stock atual derivado do respetivo histórico.
func (uc *MaterialUseCase) List(ctx context.Context, q string, page dto.PageRequest) ([]dto.MaterialResponse, error) {
	page.DefaultPage()
	lista, err := uc.repo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(lista))
	for _, m := range lista {
		stock, err := uc.stockAtual(m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toResponse(m, stock))
	}
	return out, nil
}

// Delete desativa um material (soft delete); o histórico no ledger mantém-se.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *MaterialUseCase) stockAtual(materialID string) (decimal.Decimal, error) {
	historico, err := uc.movRepo.List(repository.FiltroMovimentos{
		TipoRecurso: entity.TipoRecursoMaterial,
		RecursoID:   materialID,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.CalcularStock(historico)
}

func (uc *MaterialUseCase) toResponse(m *entity.Material, stock decimal.Decimal) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:           m.ID,
		Codigo:       m.Codigo,
		Descricao:    m.Descricao,
		Unidade:      m.Unidade,
		StockMinimo:  m.StockMinimo,
		StockAtual:   stock,
		AbaixoMinimo: stock.LessThan(m.StockMinimo),
		Ativo:        m.Ativo,
		CriadoEm:     m.CriadoEm,
		AtualizadoEm: m.AtualizadoEm,
	}
}
