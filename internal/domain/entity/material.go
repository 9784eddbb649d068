package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa um material consumível (cimento, tijolo, ferro, etc.).
// O stock atual nunca é guardado como campo: é sempre recalculado a partir do
// ledger (entradas menos saídas), evitando divergência entre ledger e contador.
type Material struct {
	ID           string
	Codigo       string // código identificador único
	Descricao    string
	Unidade      string // un, kg, m3, saco, ...
	StockMinimo  decimal.Decimal
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
