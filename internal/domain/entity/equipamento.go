package entity

import "time"

// Equipamento representa um equipamento de obra (betoneira, gerador, etc.).
// O estado atual (disponível, em obra, manutenção) nunca é persistido:
// deriva do ledger de movimentos e do flag EmManutencao.
type Equipamento struct {
	ID                  string
	Codigo              string // código identificador único
	Descricao           string
	Marca               string
	Modelo              string
	NumeroSerie         string
	ValidadeCertificado *time.Time // validade do certificado CE/inspeção
	ManualURL           string
	CertificadoURL      string
	FichaManutencaoURL  string
	EmManutencao        bool
	DescricaoAvaria     string
	Ativo               bool
	CriadoEm            time.Time
	AtualizadoEm        time.Time
}
