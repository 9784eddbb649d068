package entity

import "time"

// Viatura representa uma viatura da empresa (carrinha, camião, máquina matriculada).
type Viatura struct {
	ID               string
	Matricula        string // matrícula, identificador único
	Marca            string
	Modelo           string
	Ano              int
	ValidadeInspecao *time.Time
	ValidadeSeguro   *time.Time
	EmManutencao     bool
	DescricaoAvaria  string
	Ativo            bool
	CriadoEm         time.Time
	AtualizadoEm     time.Time
}
