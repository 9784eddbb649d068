package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de recurso rastreados pelo ledger.
const (
	TipoRecursoEquipamento = "equipamento"
	TipoRecursoViatura     = "viatura"
	TipoRecursoMaterial    = "material"
)

// Tipos de movimento do ledger.
const (
	TipoMovimentoSaida      = "saida"       // saída de ativo para uma obra
	TipoMovimentoDevolucao  = "devolucao"   // devolução de ativo ao armazém
	TipoMovimentoEntrada    = "entrada"     // entrada de material em stock
	TipoMovimentoSaidaStock = "saida_stock" // consumo de material
	TipoMovimentoLeituraKM  = "leitura_km"  // leitura de quilometragem (viaturas)
)

// TipoRecursoValido indica se o tipo de recurso é um dos conhecidos.
func TipoRecursoValido(tipo string) bool {
	switch tipo {
	case TipoRecursoEquipamento, TipoRecursoViatura, TipoRecursoMaterial:
		return true
	}
	return false
}

// Movimento é um evento imutável do ledger de movimentos. Uma vez gravado,
// nunca é alterado nem apagado; todo o estado corrente deriva da sequência
// ordenada destes eventos.
//
// Ordenação: Data ascendente; empates resolvidos por Seq (sequência de inserção).
type Movimento struct {
	ID            string
	Seq           int64 // atribuído pela persistência, monotónico
	TipoRecurso   string
	RecursoID     string
	TipoMovimento string
	ObraID        *string          // obrigatório em saida; presente em saida_stock quando o consumo é imputado a uma obra
	Quantidade    *decimal.Decimal // apenas entrada/saida_stock
	Quilometragem *decimal.Decimal // apenas leitura_km
	Data          time.Time
	CriadoEm      time.Time
	CriadoPor     string
}

// MovimentoDeAtivo indica se o movimento diz respeito a um ativo rastreável
// (equipamento ou viatura), por oposição a stock de materiais.
func (m *Movimento) MovimentoDeAtivo() bool {
	return m.TipoRecurso == TipoRecursoEquipamento || m.TipoRecurso == TipoRecursoViatura
}

// MovimentoDeStock indica se o movimento altera stock de material.
func (m *Movimento) MovimentoDeStock() bool {
	return m.TipoMovimento == TipoMovimentoEntrada || m.TipoMovimento == TipoMovimentoSaidaStock
}
