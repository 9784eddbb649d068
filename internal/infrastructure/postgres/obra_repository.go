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

var _ repository.ObraRepository = (*ObraRepo)(nil)

// ObraRepo implementação do porto ObraRepository sobre PostgreSQL.
type ObraRepo struct {
	q Querier
}

// NewObraRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewObraRepository(q Querier) *ObraRepo {
	return &ObraRepo{q: q}
}

const obraCols = `id, codigo, nome, localizacao, estado, ativo, criado_em, atualizado_em`

func pesquisaObra(o *entity.Obra) string {
	return normalizarPesquisa(strings.Join([]string{o.Codigo, o.Nome, o.Localizacao}, " "))
}

// Create persiste uma obra nova.
func (r *ObraRepo) Create(o *entity.Obra) error {
	query := `
		INSERT INTO obras (` + obraCols + `, pesquisa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Codigo, o.Nome, o.Localizacao, o.Estado,
		o.Ativo, o.CriadoEm, o.AtualizadoEm,
		pesquisaObra(o),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert obra: %w", err)
	}
	return nil
}

// GetByID obtém uma obra por ID.
func (r *ObraRepo) GetByID(id string) (*entity.Obra, error) {
	query := `SELECT ` + obraCols + ` FROM obras WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCodigo obtém uma obra pelo código único.
func (r *ObraRepo) GetByCodigo(codigo string) (*entity.Obra, error) {
	query := `SELECT ` + obraCols + ` FROM obras WHERE codigo = $1`
	return r.getOne(query, codigo)
}

func (r *ObraRepo) getOne(query string, arg any) (*entity.Obra, error) {
	o, err := scanObra(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra: %w", err)
	}
	return o, nil
}

// Update atualiza uma obra existente.
func (r *ObraRepo) Update(o *entity.Obra) error {
	query := `
		UPDATE obras SET codigo = $2, nome = $3, localizacao = $4, estado = $5,
			ativo = $6, atualizado_em = $7, pesquisa = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Codigo, o.Nome, o.Localizacao, o.Estado,
		o.Ativo, o.AtualizadoEm,
		pesquisaObra(o),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update obra: %w", err)
	}
	return nil
}

// List lista obras ativas com pesquisa textual opcional e paginação.
func (r *ObraRepo) List(q string, limit, offset int) ([]*entity.Obra, error) {
	query := `SELECT ` + obraCols + ` FROM obras WHERE ativo`
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

// ListTodas devolve todas as obras, incluindo desativadas; os relatórios
// precisam delas para dar nome a movimentos históricos.
func (r *ObraRepo) ListTodas() ([]*entity.Obra, error) {
	query := `SELECT ` + obraCols + ` FROM obras ORDER BY codigo ASC`
	return r.list(query)
}

func (r *ObraRepo) list(query string, args ...any) ([]*entity.Obra, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list obras: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Obra, 0)
	for rows.Next() {
		o, err := scanObra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan obra: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Delete desativa a obra; os movimentos que a referenciam permanecem no ledger.
func (r *ObraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE obras SET ativo = false, atualizado_em = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete obra: %w", err)
	}
	return nil
}

func scanObra(row pgx.Row) (*entity.Obra, error) {
	var o entity.Obra
	err := row.Scan(
		&o.ID, &o.Codigo, &o.Nome, &o.Localizacao, &o.Estado,
		&o.Ativo, &o.CriadoEm, &o.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
