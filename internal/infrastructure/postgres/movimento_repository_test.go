package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// capturaQuerier regista a query construída e aborta antes de tocar na BD,
// para verificar a montagem do WHERE dinâmico sem ligação real.
type capturaQuerier struct {
	sql  string
	args []any
}

var errCapturado = errors.New("query capturada")

func (c *capturaQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, errCapturado
}

func (c *capturaQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, errCapturado
}

func (c *capturaQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.sql, c.args = sql, args
	return nil
}

func TestMovimentoList_FiltrosCompostos(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewMovimentoRepository(q)

	inicio := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	_, err := repo.List(repository.FiltroMovimentos{
		TipoRecurso: "material",
		Ano:         2026,
		Mes:         3,
		DataInicio:  &inicio,
		DataFim:     &fim,
	})
	require.ErrorIs(t, err, errCapturado)

	// Ano/mes extraídos em UTC, para bater certo com a derivação em Go.
	assert.Contains(t, q.sql, "EXTRACT(YEAR FROM data AT TIME ZONE 'UTC') = $2")
	assert.Contains(t, q.sql, "EXTRACT(MONTH FROM data AT TIME ZONE 'UTC') = $3")

	// Limite inferior inclusivo, superior exclusivo.
	assert.Contains(t, q.sql, "data >= $4")
	assert.Contains(t, q.sql, "data < $5")

	assert.Contains(t, q.sql, "ORDER BY data ASC, seq ASC")
	assert.Equal(t, []any{"material", 2026, 3, inicio, fim}, q.args)
}

func TestMovimentoList_SemFiltros(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewMovimentoRepository(q)

	_, err := repo.List(repository.FiltroMovimentos{})
	require.ErrorIs(t, err, errCapturado)

	assert.NotContains(t, q.sql, "AND", "sem filtros não entra nenhuma cláusula")
	assert.Empty(t, q.args)
}
