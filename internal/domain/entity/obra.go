package entity

import "time"

// Estados possíveis de uma obra.
const (
	ObraAtiva     = "ativa"
	ObraConcluida = "concluida"
	ObraSuspensa  = "suspensa"
)

// Obra representa uma obra/estaleiro ao qual se afetam recursos.
// Para o ledger é apenas uma chave estrangeira mais metadados de apresentação.
type Obra struct {
	ID           string
	Codigo       string // código identificador único
	Nome         string
	Localizacao  string
	Estado       string // ativa, concluida, suspensa
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
