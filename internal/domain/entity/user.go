package entity

import "time"

// User utilizador da aplicação. A autenticação é uma preocupação de fronteira:
// os casos de uso do ledger recebem apenas o ID do autor já verificado.
type User struct {
	ID           string
	Nome         string
	Email        string
	PasswordHash string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
