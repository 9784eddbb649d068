package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistarMovimentoRequest registo de um evento no ledger.
// Campos obrigatórios dependem do tipo de movimento: obra_id em saida,
// quantidade em entrada/saida_stock, quilometragem em leitura_km.
type RegistarMovimentoRequest struct {
	TipoRecurso   string           `json:"tipo_recurso" validate:"required,oneof=equipamento viatura material"`
	RecursoID     string           `json:"recurso_id" validate:"required"`
	TipoMovimento string           `json:"tipo_movimento" validate:"required,oneof=saida devolucao entrada saida_stock leitura_km"`
	ObraID        *string          `json:"obra_id"`
	Quantidade    *decimal.Decimal `json:"quantidade"`
	Quilometragem *decimal.Decimal `json:"quilometragem"`
	Data          *time.Time       `json:"data"` // por omissão: agora
}

// MovimentoResponse representação de um evento do ledger.
type MovimentoResponse struct {
	ID            string           `json:"id"`
	TipoRecurso   string           `json:"tipo_recurso"`
	RecursoID     string           `json:"recurso_id"`
	TipoMovimento string           `json:"tipo_movimento"`
	ObraID        *string          `json:"obra_id,omitempty"`
	Quantidade    *decimal.Decimal `json:"quantidade,omitempty"`
	Quilometragem *decimal.Decimal `json:"quilometragem,omitempty"`
	Data          time.Time        `json:"data"`
	CriadoEm      time.Time        `json:"criado_em"`
	CriadoPor     string           `json:"criado_por"`
}

// FiltroMovimentosRequest filtros de consulta ao ledger (query string).
// Datas em formato YYYY-MM-DD. Todos opcionais e composáveis.
type FiltroMovimentosRequest struct {
	TipoRecurso   string `query:"tipo_recurso" validate:"omitempty,oneof=equipamento viatura material"`
	RecursoID     string `query:"recurso_id"`
	TipoMovimento string `query:"tipo_movimento" validate:"omitempty,oneof=saida devolucao entrada saida_stock leitura_km"`
	ObraID        string `query:"obra_id"`
	Ano           int    `query:"ano"`
	Mes           int    `query:"mes" validate:"omitempty,min=1,max=12"`
	DataInicio    string `query:"data_inicio"`
	DataFim       string `query:"data_fim"`
}
