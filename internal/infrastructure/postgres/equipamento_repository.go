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

var _ repository.EquipamentoRepository = (*EquipamentoRepo)(nil)

// EquipamentoRepo implementação do porto EquipamentoRepository sobre PostgreSQL.
type EquipamentoRepo struct {
	q Querier
}

// NewEquipamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEquipamentoRepository(q Querier) *EquipamentoRepo {
	return &EquipamentoRepo{q: q}
}

const equipamentoCols = `id, codigo, descricao, marca, modelo, numero_serie, validade_certificado, manual_url, certificado_url, ficha_manutencao_url, em_manutencao, descricao_avaria, ativo, criado_em, atualizado_em`

// pesquisaEquipamento texto normalizado indexável para pesquisa sem diacríticos.
func pesquisaEquipamento(e *entity.Equipamento) string {
	return normalizarPesquisa(strings.Join([]string{e.Codigo, e.Descricao, e.Marca, e.Modelo, e.NumeroSerie}, " "))
}

// Create persiste um equipamento novo.
func (r *EquipamentoRepo) Create(e *entity.Equipamento) error {
	query := `
		INSERT INTO equipamentos (` + equipamentoCols + `, pesquisa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Codigo, e.Descricao, e.Marca, e.Modelo, e.NumeroSerie,
		e.ValidadeCertificado, e.ManualURL, e.CertificadoURL, e.FichaManutencaoURL,
		e.EmManutencao, e.DescricaoAvaria, e.Ativo, e.CriadoEm, e.AtualizadoEm,
		pesquisaEquipamento(e),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipamento: %w", err)
	}
	return nil
}

// GetByID obtém um equipamento por ID.
func (r *EquipamentoRepo) GetByID(id string) (*entity.Equipamento, error) {
	query := `SELECT ` + equipamentoCols + ` FROM equipamentos WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCodigo obtém um equipamento pelo código único.
func (r *EquipamentoRepo) GetByCodigo(codigo string) (*entity.Equipamento, error) {
	query := `SELECT ` + equipamentoCols + ` FROM equipamentos WHERE codigo = $1`
	return r.getOne(query, codigo)
}

func (r *EquipamentoRepo) getOne(query string, arg any) (*entity.Equipamento, error) {
	e, err := scanEquipamento(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipamento: %w", err)
	}
	return e, nil
}

// Update atualiza um equipamento existente.
func (r *EquipamentoRepo) Update(e *entity.Equipamento) error {
	query := `
		UPDATE equipamentos SET codigo = $2, descricao = $3, marca = $4, modelo = $5, numero_serie = $6,
			validade_certificado = $7, manual_url = $8, certificado_url = $9, ficha_manutencao_url = $10,
			em_manutencao = $11, descricao_avaria = $12, ativo = $13, atualizado_em = $14, pesquisa = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Codigo, e.Descricao, e.Marca, e.Modelo, e.NumeroSerie,
		e.ValidadeCertificado, e.ManualURL, e.CertificadoURL, e.FichaManutencaoURL,
		e.EmManutencao, e.DescricaoAvaria, e.Ativo, e.AtualizadoEm,
		pesquisaEquipamento(e),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update equipamento: %w", err)
	}
	return nil
}

// UpdateManutencao altera apenas em_manutencao e descricao_avaria.
func (r *EquipamentoRepo) UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE equipamentos SET em_manutencao = $2, descricao_avaria = $3, atualizado_em = now() WHERE id = $1`,
		id, emManutencao, descricaoAvaria,
	)
	if err != nil {
		return fmt.Errorf("update manutencao equipamento: %w", err)
	}
	return nil
}

// List lista equipamentos ativos com pesquisa textual opcional e paginação.
// A pesquisa é insensível a maiúsculas e diacríticos.
func (r *EquipamentoRepo) List(q string, limit, offset int) ([]*entity.Equipamento, error) {
	query := `SELECT ` + equipamentoCols + ` FROM equipamentos WHERE ativo`
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

// ListAtivos devolve todos os equipamentos ativos, sem paginação; usado pelos
// relatórios, que precisam do universo completo.
func (r *EquipamentoRepo) ListAtivos() ([]*entity.Equipamento, error) {
	query := `SELECT ` + equipamentoCols + ` FROM equipamentos WHERE ativo ORDER BY codigo ASC`
	return r.list(query)
}

func (r *EquipamentoRepo) list(query string, args ...any) ([]*entity.Equipamento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipamentos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Equipamento, 0)
	for rows.Next() {
		e, err := scanEquipamento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipamento: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete desativa o equipamento. O registo fica para os movimentos históricos.
func (r *EquipamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE equipamentos SET ativo = false, atualizado_em = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipamento: %w", err)
	}
	return nil
}

func scanEquipamento(row pgx.Row) (*entity.Equipamento, error) {
	var e entity.Equipamento
	err := row.Scan(
		&e.ID, &e.Codigo, &e.Descricao, &e.Marca, &e.Modelo, &e.NumeroSerie,
		&e.ValidadeCertificado, &e.ManualURL, &e.CertificadoURL, &e.FichaManutencaoURL,
		&e.EmManutencao, &e.DescricaoAvaria, &e.Ativo, &e.CriadoEm, &e.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
