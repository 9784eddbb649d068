package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação do porto MaterialRepository sobre PostgreSQL.
// A tabela não tem coluna de stock: o stock deriva sempre do ledger.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialCols = `id, codigo, descricao, unidade, stock_minimo, ativo, criado_em, atualizado_em`

func pesquisaMaterial(m *entity.Material) string {
	return normalizarPesquisa(strings.Join([]string{m.Codigo, m.Descricao}, " "))
}

// Create persiste um material novo.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materiais (` + materialCols + `, pesquisa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Codigo, m.Descricao, m.Unidade, m.StockMinimo,
		m.Ativo, m.CriadoEm, m.AtualizadoEm,
		pesquisaMaterial(m),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtém um material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialCols + ` FROM materiais WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCodigo obtém um material pelo código único.
func (r *MaterialRepo) GetByCodigo(codigo string) (*entity.Material, error) {
	query := `SELECT ` + materialCols + ` FROM materiais WHERE codigo = $1`
	return r.getOne(query, codigo)
}

func (r *MaterialRepo) getOne(query string, arg any) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// Update atualiza um material existente.
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materiais SET codigo = $2, descricao = $3, unidade = $4, stock_minimo = $5,
			ativo = $6, atualizado_em = $7, pesquisa = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Codigo, m.Descricao, m.Unidade, m.StockMinimo,
		m.Ativo, m.AtualizadoEm,
		pesquisaMaterial(m),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// List lista materiais ativos com pesquisa textual opcional e paginação.
func (r *MaterialRepo) List(q string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialCols + ` FROM materiais WHERE ativo`
	args := []any{}
	pos := 1
	if q != "" {
		query += fmt.Sprintf(" AND pesquisa LIKE '%%' || $%d || '%%'", pos)
		args = append(args, normalizarPesquisa(q))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY codigo ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.list(query, args...)
}

// ListAtivos devolve todos os materiais ativos, sem paginação.
func (r *MaterialRepo) ListAtivos() ([]*entity.Material, error) {
	query := `SELECT ` + materialCols + ` FROM materiais WHERE ativo ORDER BY codigo ASC`
	return r.list(query)
}

func (r *MaterialRepo) list(query string, args ...any) ([]*entity.Material, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materiais: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete desativa o material; os movimentos de stock históricos ficam no ledger.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE materiais SET ativo = false, atualizado_em = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Codigo, &m.Descricao, &m.Unidade, &m.StockMinimo,
		&m.Ativo, &m.CriadoEm, &m.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
