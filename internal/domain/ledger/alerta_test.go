package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jfirmino/armazem-api/internal/domain/ledger"
)

func TestDiasRestantes(t *testing.T) {
	hoje := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	casos := []struct {
		nome     string
		validade time.Time
		esperado int
	}{
		{"mesmo dia", time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC), 0},
		{"amanha", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), 1},
		{"daqui a uma semana", time.Date(2026, 3, 22, 23, 59, 0, 0, time.UTC), 7},
		{"expirou ontem", time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC), -1},
		{"expirou ha um mes", time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), -30},
		{"daqui a 30 dias", time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, ledger.DiasRestantes(hoje, c.validade),
				"a componente horária não deve influenciar a contagem de dias")
		})
	}
}

// Os flags são mutuamente exclusivos: expirado OU urgente OU nenhum (próximos).
func TestClassificarAlerta_BaldesExclusivos(t *testing.T) {
	casos := []struct {
		dias     int
		expirado bool
		urgente  bool
	}{
		{-10, true, false},
		{-1, true, false},
		{0, false, true},
		{3, false, true},
		{7, false, true},
		{8, false, false},
		{30, false, false},
	}
	for _, c := range casos {
		expirado, urgente := ledger.ClassificarAlerta(c.dias, ledger.LimiarUrgentePadrao)
		assert.Equal(t, c.expirado, expirado, "dias=%d", c.dias)
		assert.Equal(t, c.urgente, urgente, "dias=%d", c.dias)
		assert.False(t, expirado && urgente, "dias=%d: nunca ambos", c.dias)
	}
}

func TestClassificarAlerta_LimiarConfiguravel(t *testing.T) {
	_, urgente := ledger.ClassificarAlerta(10, 14)
	assert.True(t, urgente, "com limiar 14, 10 dias restantes é urgente")

	_, urgente = ledger.ClassificarAlerta(10, ledger.LimiarUrgentePadrao)
	assert.False(t, urgente)
}
