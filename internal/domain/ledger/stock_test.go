package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
)

// movStock constrói um movimento de stock de material.
func movStock(tipo string, qtd float64, horas int, seq int64) *entity.Movimento {
	q := decimal.NewFromFloat(qtd)
	return &entity.Movimento{
		Seq:           seq,
		TipoRecurso:   entity.TipoRecursoMaterial,
		RecursoID:     "MAT1",
		TipoMovimento: tipo,
		Quantidade:    &q,
		Data:          baseData.Add(time.Duration(horas) * time.Hour),
	}
}

// Vetor do cenário de referência: entrada 100, saida_stock 30 →
// stock = 70, entradas = 100, saídas = 30, consumo líquido = +70.
func TestCalcularStock_VetorReferencia(t *testing.T) {
	movs := []*entity.Movimento{
		movStock(entity.TipoMovimentoEntrada, 100, 0, 1),
		movStock(entity.TipoMovimentoSaidaStock, 30, 1, 2),
	}

	stock, err := ledger.CalcularStock(movs)
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(70)), "stock = 100 - 30 = 70, obtido %s", stock)

	resumo, err := ledger.ResumirStock(movs)
	require.NoError(t, err)
	assert.True(t, resumo.Entradas.Equal(decimal.NewFromInt(100)))
	assert.True(t, resumo.Saidas.Equal(decimal.NewFromInt(30)))
	assert.True(t, resumo.ConsumoLiquido().Equal(decimal.NewFromInt(70)),
		"convenção de sinal: entradas − saídas")
}

func TestCalcularStock_HistoricoVazio_Zero(t *testing.T) {
	stock, err := ledger.CalcularStock(nil)
	require.NoError(t, err)
	assert.True(t, stock.IsZero(), "sem movimentos o stock parte de zero")
}

// Stock pode ficar negativo se o ledger o disser: a derivação não corrige dados.
func TestCalcularStock_PodeSerNegativo(t *testing.T) {
	movs := []*entity.Movimento{
		movStock(entity.TipoMovimentoEntrada, 10, 0, 1),
		movStock(entity.TipoMovimentoSaidaStock, 25, 1, 2),
	}
	stock, err := ledger.CalcularStock(movs)
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(-15)))
}

func TestResumirStock_QuantidadeNaoPositiva_Erro(t *testing.T) {
	movs := []*entity.Movimento{
		movStock(entity.TipoMovimentoEntrada, 100, 0, 1),
		movStock(entity.TipoMovimentoSaidaStock, -5, 1, 2),
	}
	_, err := ledger.ResumirStock(movs)
	assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida)

	movs = []*entity.Movimento{movStock(entity.TipoMovimentoEntrada, 0, 0, 1)}
	_, err = ledger.ResumirStock(movs)
	assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida)
}

func TestResumirStock_QuantidadeAusente_Erro(t *testing.T) {
	m := movStock(entity.TipoMovimentoEntrada, 1, 0, 1)
	m.Quantidade = nil
	_, err := ledger.ResumirStock([]*entity.Movimento{m})
	assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida)
}

// Movimentos de ativos misturados na fatia são ignorados pelo acumulador.
func TestResumirStock_IgnoraMovimentosDeAtivos(t *testing.T) {
	movs := []*entity.Movimento{
		movStock(entity.TipoMovimentoEntrada, 50, 0, 1),
		mov(entity.TipoMovimentoSaida, "OBRA1", 1, 2),
		mov(entity.TipoMovimentoDevolucao, "", 2, 3),
	}
	resumo, err := ledger.ResumirStock(movs)
	require.NoError(t, err)
	assert.True(t, resumo.Entradas.Equal(decimal.NewFromInt(50)))
	assert.True(t, resumo.Saidas.IsZero())
}

func TestConsumoLiquido_ConvencaoDeSinal(t *testing.T) {
	c := ledger.ConsumoLiquido(decimal.NewFromInt(100), decimal.NewFromInt(30))
	assert.True(t, c.Equal(decimal.NewFromInt(70)))

	c = ledger.ConsumoLiquido(decimal.NewFromInt(10), decimal.NewFromInt(40))
	assert.True(t, c.Equal(decimal.NewFromInt(-30)), "mais saídas do que entradas dá consumo negativo")
}
