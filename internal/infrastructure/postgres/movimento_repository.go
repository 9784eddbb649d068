package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação do ledger de movimentos sobre PostgreSQL.
// A tabela é append-only: este adaptador não expõe update nem delete.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

const movimentoCols = `id, seq, tipo_recurso, recurso_id, tipo_movimento, obra_id, quantidade, quilometragem, data, criado_em, criado_por`

// Create persiste um movimento e lê o seq atribuído pela sequência da tabela.
func (r *MovimentoRepo) Create(m *entity.Movimento) error {
	query := `
		INSERT INTO movimentos (id, tipo_recurso, recurso_id, tipo_movimento, obra_id, quantidade, quilometragem, data, criado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		m.ID, m.TipoRecurso, m.RecursoID, m.TipoMovimento, m.ObraID,
		m.Quantidade, m.Quilometragem, m.Data, m.CriadoEm, m.CriadoPor,
	).Scan(&m.Seq)
	if err != nil {
		return fmt.Errorf("insert movimento: %w", err)
	}
	return nil
}

// GetByID obtém um movimento por ID.
func (r *MovimentoRepo) GetByID(id string) (*entity.Movimento, error) {
	query := `SELECT ` + movimentoCols + ` FROM movimentos WHERE id = $1`
	m, err := scanMovimento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimento: %w", err)
	}
	return m, nil
}

// List devolve a fatia filtrada do ledger por data ascendente, empates por seq.
// Todos os filtros são opcionais e composáveis.
func (r *MovimentoRepo) List(f repository.FiltroMovimentos) ([]*entity.Movimento, error) {
	query := `SELECT ` + movimentoCols + ` FROM movimentos WHERE 1=1`
	args := []any{}
	pos := 1

	add := func(clause string, value any) {
		query += fmt.Sprintf(" AND "+clause, pos)
		args = append(args, value)
		pos++
	}

	if f.TipoRecurso != "" {
		add("tipo_recurso = $%d", f.TipoRecurso)
	}
	if f.RecursoID != "" {
		add("recurso_id = $%d", f.RecursoID)
	}
	if f.TipoMovimento != "" {
		add("tipo_movimento = $%d", f.TipoMovimento)
	}
	if f.ObraID != "" {
		add("obra_id = $%d", f.ObraID)
	}
	// EXTRACT sobre timestamptz avalia na time zone da sessão; forçar UTC
	// para que os baldes ano/mes coincidam com a derivação feita em Go.
	if f.Ano != 0 {
		add("EXTRACT(YEAR FROM data AT TIME ZONE 'UTC') = $%d", f.Ano)
	}
	if f.Mes != 0 {
		add("EXTRACT(MONTH FROM data AT TIME ZONE 'UTC') = $%d", f.Mes)
	}
	if f.DataInicio != nil {
		add("data >= $%d", *f.DataInicio)
	}
	if f.DataFim != nil {
		add("data < $%d", *f.DataFim)
	}
	query += " ORDER BY data ASC, seq ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Movimento, 0)
	for rows.Next() {
		m, err := scanMovimento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovimento(row pgx.Row) (*entity.Movimento, error) {
	var m entity.Movimento
	err := row.Scan(
		&m.ID, &m.Seq, &m.TipoRecurso, &m.RecursoID, &m.TipoMovimento,
		&m.ObraID, &m.Quantidade, &m.Quilometragem, &m.Data, &m.CriadoEm, &m.CriadoPor,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
