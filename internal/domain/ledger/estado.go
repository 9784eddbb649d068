// Package ledger contém a lógica pura de derivação sobre o ledger de
// movimentos: resolução de estado de ativos, acumulação de stock de materiais
// e classificação de alertas de documentos. Todas as funções são puras e
// determinísticas — o mesmo input produz sempre o mesmo resultado — pelo que
// podem ser executadas concorrentemente e repetidamente sem invalidação de
// caches.
package ledger

import (
	"github.com/jfirmino/armazem-api/internal/domain/entity"
)

// Estado é o estado operacional derivado de um recurso rastreável.
type Estado string

const (
	EstadoDisponivel Estado = "disponivel"
	EstadoEmObra     Estado = "em_obra"
	EstadoManutencao Estado = "manutencao"
)

// EstadoValido indica se a string corresponde a um estado conhecido.
func EstadoValido(s string) bool {
	switch Estado(s) {
	case EstadoDisponivel, EstadoEmObra, EstadoManutencao:
		return true
	}
	return false
}

// ResolverEstado deriva o estado atual de um equipamento ou viatura a partir
// do flag de manutenção e da fatia ordenada do ledger desse recurso.
//
// O fold é uma máquina de dois estados (livre / afeto a obra):
//
//	saida      -> afeto, regista a obra de destino
//	devolucao  -> livre
//	outros     -> sem efeito
//
// Uma devolucao sem saida aberta é tolerada como no-op: ledgers antigos podem
// anteceder esta derivação ou conter lançamentos corretivos. O flag de
// manutenção prevalece sempre sobre o estado derivado do ledger.
//
// Devolve o estado e, quando em obra, o ID da obra da afetação aberta.
func ResolverEstado(emManutencao bool, movimentos []*entity.Movimento) (Estado, *string) {
	var aberto bool
	var obraID *string

	for _, m := range movimentos {
		switch m.TipoMovimento {
		case entity.TipoMovimentoSaida:
			aberto = true
			obraID = m.ObraID
		case entity.TipoMovimentoDevolucao:
			aberto = false
			obraID = nil
		}
	}

	if emManutencao {
		return EstadoManutencao, nil
	}
	if aberto {
		return EstadoEmObra, obraID
	}
	return EstadoDisponivel, nil
}

// ContagemMovimentos totais de movimentos de um recurso numa fatia do ledger.
type ContagemMovimentos struct {
	Total      int
	Saidas     int
	Devolucoes int
}

// ContarMovimentos conta os movimentos de uma fatia já filtrada do ledger.
func ContarMovimentos(movimentos []*entity.Movimento) ContagemMovimentos {
	var c ContagemMovimentos
	for _, m := range movimentos {
		c.Total++
		switch m.TipoMovimento {
		case entity.TipoMovimentoSaida:
			c.Saidas++
		case entity.TipoMovimentoDevolucao:
			c.Devolucoes++
		}
	}
	return c
}
