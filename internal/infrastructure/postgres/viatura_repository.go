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

var _ repository.ViaturaRepository = (*ViaturaRepo)(nil)

// ViaturaRepo implementação do porto ViaturaRepository sobre PostgreSQL.
type ViaturaRepo struct {
	q Querier
}

// NewViaturaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewViaturaRepository(q Querier) *ViaturaRepo {
	return &ViaturaRepo{q: q}
}

const viaturaCols = `id, matricula, marca, modelo, ano, validade_inspecao, validade_seguro, em_manutencao, descricao_avaria, ativo, criado_em, atualizado_em`

func pesquisaViatura(v *entity.Viatura) string {
	return normalizarPesquisa(strings.Join([]string{v.Matricula, v.Marca, v.Modelo}, " "))
}

// Create persiste uma viatura nova.
func (r *ViaturaRepo) Create(v *entity.Viatura) error {
	query := `
		INSERT INTO viaturas (` + viaturaCols + `, pesquisa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Matricula, v.Marca, v.Modelo, v.Ano,
		v.ValidadeInspecao, v.ValidadeSeguro, v.EmManutencao, v.DescricaoAvaria,
		v.Ativo, v.CriadoEm, v.AtualizadoEm,
		pesquisaViatura(v),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert viatura: %w", err)
	}
	return nil
}

// GetByID obtém uma viatura por ID.
func (r *ViaturaRepo) GetByID(id string) (*entity.Viatura, error) {
	query := `SELECT ` + viaturaCols + ` FROM viaturas WHERE id = $1`
	return r.getOne(query, id)
}

// GetByMatricula obtém uma viatura pela matrícula única.
func (r *ViaturaRepo) GetByMatricula(matricula string) (*entity.Viatura, error) {
	query := `SELECT ` + viaturaCols + ` FROM viaturas WHERE matricula = $1`
	return r.getOne(query, matricula)
}

func (r *ViaturaRepo) getOne(query string, arg any) (*entity.Viatura, error) {
	v, err := scanViatura(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get viatura: %w", err)
	}
	return v, nil
}

// Update atualiza uma viatura existente.
func (r *ViaturaRepo) Update(v *entity.Viatura) error {
	query := `
		UPDATE viaturas SET matricula = $2, marca = $3, modelo = $4, ano = $5,
			validade_inspecao = $6, validade_seguro = $7, em_manutencao = $8,
			descricao_avaria = $9, ativo = $10, atualizado_em = $11, pesquisa = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Matricula, v.Marca, v.Modelo, v.Ano,
		v.ValidadeInspecao, v.ValidadeSeguro, v.EmManutencao, v.DescricaoAvaria,
		v.Ativo, v.AtualizadoEm,
		pesquisaViatura(v),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update viatura: %w", err)
	}
	return nil
}

// UpdateManutencao altera apenas em_manutencao e descricao_avaria.
func (r *ViaturaRepo) UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE viaturas SET em_manutencao = $2, descricao_avaria = $3, atualizado_em = now() WHERE id = $1`,
		id, emManutencao, descricaoAvaria,
	)
	if err != nil {
		return fmt.Errorf("update manutencao viatura: %w", err)
	}
	return nil
}

// List lista viaturas ativas com pesquisa textual opcional e paginação.
func (r *ViaturaRepo) List(q string, limit, offset int) ([]*entity.Viatura, error) {
	query := `SELECT ` + viaturaCols + ` FROM viaturas WHERE ativo`
	args := []any{}
	pos := 1
	if q != "" {
		query += fmt.Sprintf(" AND pesquisa LIKE '%%' || $%d || '%%'", pos)
		args = append(args, normalizarPesquisa(q))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY matricula ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.list(query, args...)
}

// ListAtivos devolve todas as viaturas ativas, sem paginação.
func (r *ViaturaRepo) ListAtivos() ([]*entity.Viatura, error) {
	query := `SELECT ` + viaturaCols + ` FROM viaturas WHERE ativo ORDER BY matricula ASC`
	return r.list(query)
}

func (r *ViaturaRepo) list(query string, args ...any) ([]*entity.Viatura, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list viaturas: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Viatura, 0)
	for rows.Next() {
		v, err := scanViatura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan viatura: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete desativa a viatura.
func (r *ViaturaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE viaturas SET ativo = false, atualizado_em = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete viatura: %w", err)
	}
	return nil
}

func scanViatura(row pgx.Row) (*entity.Viatura, error) {
	var v entity.Viatura
	err := row.Scan(
		&v.ID, &v.Matricula, &v.Marca, &v.Modelo, &v.Ano,
		&v.ValidadeInspecao, &v.ValidadeSeguro, &v.EmManutencao, &v.DescricaoAvaria,
		&v.Ativo, &v.CriadoEm, &v.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
