package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var baseData = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

// mov constrói um movimento de ativo com data deslocada em `horas`.
func mov(tipo string, obraID string, horas int, seq int64) *entity.Movimento {
	m := &entity.Movimento{
		Seq:           seq,
		TipoRecurso:   entity.TipoRecursoEquipamento,
		RecursoID:     "EQ1",
		TipoMovimento: tipo,
		Data:          baseData.Add(time.Duration(horas) * time.Hour),
	}
	if obraID != "" {
		m.ObraID = &obraID
	}
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolverEstado — tabela de transições do fold
// ──────────────────────────────────────────────────────────────────────────────

func TestResolverEstado_HistoricoVazio_Disponivel(t *testing.T) {
	estado, obraID := ledger.ResolverEstado(false, nil)
	assert.Equal(t, ledger.EstadoDisponivel, estado)
	assert.Nil(t, obraID)
}

func TestResolverEstado_SaidaAberta_EmObra(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
	}
	estado, obraID := ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoEmObra, estado)
	require.NotNil(t, obraID, "em_obra deve expor a obra da afetação aberta")
	assert.Equal(t, "OBRA1", *obraID)
}

func TestResolverEstado_SaidaDevolucao_Disponivel(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
		mov(entity.TipoMovimentoDevolucao, "", 1, 2),
	}
	estado, obraID := ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoDisponivel, estado)
	assert.Nil(t, obraID)
}

// Histórico alternado com número ímpar de pares terminando em saida → em_obra;
// terminando em devolucao → disponivel.
func TestResolverEstado_HistoricoAlternado(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
		mov(entity.TipoMovimentoDevolucao, "", 1, 2),
		mov(entity.TipoMovimentoSaida, "OBRA2", 2, 3),
		mov(entity.TipoMovimentoDevolucao, "", 3, 4),
		mov(entity.TipoMovimentoSaida, "OBRA3", 4, 5),
	}
	estado, obraID := ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoEmObra, estado)
	require.NotNil(t, obraID)
	assert.Equal(t, "OBRA3", *obraID, "a obra exposta deve ser a da última saida aberta")

	movs = append(movs, mov(entity.TipoMovimentoDevolucao, "", 5, 6))
	estado, obraID = ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoDisponivel, estado)
	assert.Nil(t, obraID)
}

// Devolucao órfã (sem saida aberta) é tolerada como no-op no fold.
func TestResolverEstado_DevolucaoOrfa_NoOp(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoDevolucao, "", 0, 1),
	}
	estado, obraID := ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoDisponivel, estado)
	assert.Nil(t, obraID)

	// Órfã no meio do histórico também não perturba o fold.
	movs = []*entity.Movimento{
		mov(entity.TipoMovimentoDevolucao, "", 0, 1),
		mov(entity.TipoMovimentoSaida, "OBRA1", 1, 2),
	}
	estado, obraID = ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoEmObra, estado)
	require.NotNil(t, obraID)
	assert.Equal(t, "OBRA1", *obraID)
}

// O flag de manutenção prevalece sobre qualquer conteúdo do ledger,
// incluindo uma saida aberta.
func TestResolverEstado_ManutencaoPrevalece(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
	}
	estado, obraID := ledger.ResolverEstado(true, movs)
	assert.Equal(t, ledger.EstadoManutencao, estado)
	assert.Nil(t, obraID)

	estado, _ = ledger.ResolverEstado(true, nil)
	assert.Equal(t, ledger.EstadoManutencao, estado)
}

// Leituras de quilometragem não afetam a máquina de estados.
func TestResolverEstado_LeituraKMSemEfeito(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
		mov(entity.TipoMovimentoLeituraKM, "", 1, 2),
	}
	estado, obraID := ledger.ResolverEstado(false, movs)
	assert.Equal(t, ledger.EstadoEmObra, estado)
	require.NotNil(t, obraID)
	assert.Equal(t, "OBRA1", *obraID)
}

// O resultado é função pura do input: repetir o fold dá sempre o mesmo estado.
func TestResolverEstado_Deterministico(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
		mov(entity.TipoMovimentoDevolucao, "", 1, 2),
		mov(entity.TipoMovimentoSaida, "OBRA2", 2, 3),
	}
	estado1, obra1 := ledger.ResolverEstado(false, movs)
	estado2, obra2 := ledger.ResolverEstado(false, movs)
	assert.Equal(t, estado1, estado2)
	require.NotNil(t, obra1)
	require.NotNil(t, obra2)
	assert.Equal(t, *obra1, *obra2)
}

// ──────────────────────────────────────────────────────────────────────────────
// ContarMovimentos
// ──────────────────────────────────────────────────────────────────────────────

func TestContarMovimentos(t *testing.T) {
	movs := []*entity.Movimento{
		mov(entity.TipoMovimentoSaida, "OBRA1", 0, 1),
		mov(entity.TipoMovimentoDevolucao, "", 1, 2),
		mov(entity.TipoMovimentoSaida, "OBRA2", 2, 3),
		mov(entity.TipoMovimentoLeituraKM, "", 3, 4),
	}
	c := ledger.ContarMovimentos(movs)
	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 2, c.Saidas)
	assert.Equal(t, 1, c.Devolucoes)
}

func TestContarMovimentos_Vazio(t *testing.T) {
	c := ledger.ContarMovimentos(nil)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.Saidas)
	assert.Zero(t, c.Devolucoes)
}
