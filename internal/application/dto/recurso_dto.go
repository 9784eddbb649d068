package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Equipamentos
// ──────────────────────────────────────────────────────────────────────────────

// CreateEquipamentoRequest criação de um equipamento.
type CreateEquipamentoRequest struct {
	Codigo              string     `json:"codigo" validate:"required"`
	Descricao           string     `json:"descricao" validate:"required"`
	Marca               string     `json:"marca"`
	Modelo              string     `json:"modelo"`
	NumeroSerie         string     `json:"numero_serie"`
	ValidadeCertificado *time.Time `json:"validade_certificado"`
	ManualURL           string     `json:"manual_url" validate:"omitempty,url"`
	CertificadoURL      string     `json:"certificado_url" validate:"omitempty,url"`
	FichaManutencaoURL  string     `json:"ficha_manutencao_url" validate:"omitempty,url"`
	EmManutencao        bool       `json:"em_manutencao"`
	DescricaoAvaria     string     `json:"descricao_avaria"`
}

// UpdateEquipamentoRequest atualização; campos nil não são alterados.
type UpdateEquipamentoRequest struct {
	Codigo              *string    `json:"codigo"`
	Descricao           *string    `json:"descricao"`
	Marca               *string    `json:"marca"`
	Modelo              *string    `json:"modelo"`
	NumeroSerie         *string    `json:"numero_serie"`
	ValidadeCertificado *time.Time `json:"validade_certificado"`
	ManualURL           *string    `json:"manual_url" validate:"omitempty,url"`
	CertificadoURL      *string    `json:"certificado_url" validate:"omitempty,url"`
	FichaManutencaoURL  *string    `json:"ficha_manutencao_url" validate:"omitempty,url"`
	EmManutencao        *bool      `json:"em_manutencao"`
	DescricaoAvaria     *string    `json:"descricao_avaria"`
	Ativo               *bool      `json:"ativo"`
}

// EquipamentoResponse representação de um equipamento.
type EquipamentoResponse struct {
	ID                  string     `json:"id"`
	Codigo              string     `json:"codigo"`
	Descricao           string     `json:"descricao"`
	Marca               string     `json:"marca"`
	Modelo              string     `json:"modelo"`
	NumeroSerie         string     `json:"numero_serie"`
	ValidadeCertificado *time.Time `json:"validade_certificado"`
	ManualURL           string     `json:"manual_url"`
	CertificadoURL      string     `json:"certificado_url"`
	FichaManutencaoURL  string     `json:"ficha_manutencao_url"`
	EmManutencao        bool       `json:"em_manutencao"`
	DescricaoAvaria     string     `json:"descricao_avaria"`
	Ativo               bool       `json:"ativo"`
	CriadoEm            time.Time  `json:"criado_em"`
	AtualizadoEm        time.Time  `json:"atualizado_em"`
}

// ManutencaoRequest atualização parcial do estado de manutenção.
// Apenas estes dois campos são alterados no registo.
type ManutencaoRequest struct {
	EmManutencao    bool   `json:"em_manutencao"`
	DescricaoAvaria string `json:"descricao_avaria"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Viaturas
// ──────────────────────────────────────────────────────────────────────────────

// CreateViaturaRequest criação de uma viatura.
type CreateViaturaRequest struct {
	Matricula        string     `json:"matricula" validate:"required"`
	Marca            string     `json:"marca"`
	Modelo           string     `json:"modelo"`
	Ano              int        `json:"ano" validate:"omitempty,min=1950"`
	ValidadeInspecao *time.Time `json:"validade_inspecao"`
	ValidadeSeguro   *time.Time `json:"validade_seguro"`
	EmManutencao     bool       `json:"em_manutencao"`
	DescricaoAvaria  string     `json:"descricao_avaria"`
}

// UpdateViaturaRequest atualização; campos nil não são alterados.
type UpdateViaturaRequest struct {
	Matricula        *string    `json:"matricula"`
	Marca            *string    `json:"marca"`
	Modelo           *string    `json:"modelo"`
	Ano              *int       `json:"ano"`
	ValidadeInspecao *time.Time `json:"validade_inspecao"`
	ValidadeSeguro   *time.Time `json:"validade_seguro"`
	EmManutencao     *bool      `json:"em_manutencao"`
	DescricaoAvaria  *string    `json:"descricao_avaria"`
	Ativo            *bool      `json:"ativo"`
}

// ViaturaResponse representação de uma viatura.
type ViaturaResponse struct {
	ID               string     `json:"id"`
	Matricula        string     `json:"matricula"`
	Marca            string     `json:"marca"`
	Modelo           string     `json:"modelo"`
	Ano              int        `json:"ano"`
	ValidadeInspecao *time.Time `json:"validade_inspecao"`
	ValidadeSeguro   *time.Time `json:"validade_seguro"`
	EmManutencao     bool       `json:"em_manutencao"`
	DescricaoAvaria  string     `json:"descricao_avaria"`
	Ativo            bool       `json:"ativo"`
	CriadoEm         time.Time  `json:"criado_em"`
	AtualizadoEm     time.Time  `json:"atualizado_em"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Materiais
// ──────────────────────────────────────────────────────────────────────────────

// CreateMaterialRequest criação de um material.
type CreateMaterialRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Descricao   string          `json:"descricao" validate:"required"`
	Unidade     string          `json:"unidade"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
}

// UpdateMaterialRequest atualização; campos nil não são alterados.
type UpdateMaterialRequest struct {
	Codigo      *string          `json:"codigo"`
	Descricao   *string          `json:"descricao"`
	Unidade     *string          `json:"unidade"`
	StockMinimo *decimal.Decimal `json:"stock_minimo"`
	Ativo       *bool            `json:"ativo"`
}

// MaterialResponse representação de um material. StockAtual é derivado do
// ledger no momento da leitura, nunca lido de um campo persistido.
type MaterialResponse struct {
	ID           string          `json:"id"`
	Codigo       string          `json:"codigo"`
	Descricao    string          `json:"descricao"`
	Unidade      string          `json:"unidade"`
	StockMinimo  decimal.Decimal `json:"stock_minimo"`
	StockAtual   decimal.Decimal `json:"stock_atual"`
	AbaixoMinimo bool            `json:"abaixo_minimo"`
	Ativo        bool            `json:"ativo"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Obras
// ──────────────────────────────────────────────────────────────────────────────

// CreateObraRequest criação de uma obra.
type CreateObraRequest struct {
	Codigo      string `json:"codigo" validate:"required"`
	Nome        string `json:"nome" validate:"required"`
	Localizacao string `json:"localizacao"`
	Estado      string `json:"estado" validate:"omitempty,oneof=ativa concluida suspensa"`
}

// UpdateObraRequest atualização; campos nil não são alterados.
type UpdateObraRequest struct {
	Codigo      *string `json:"codigo"`
	Nome        *string `json:"nome"`
	Localizacao *string `json:"localizacao"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=ativa concluida suspensa"`
	Ativo       *bool   `json:"ativo"`
}

// ObraResponse representação de uma obra.
type ObraResponse struct {
	ID           string    `json:"id"`
	Codigo       string    `json:"codigo"`
	Nome         string    `json:"nome"`
	Localizacao  string    `json:"localizacao"`
	Estado       string    `json:"estado"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}
