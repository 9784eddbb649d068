package repository

import (
	"time"

	"github.com/jfirmino/armazem-api/internal/domain/entity"
)

// FiltroMovimentos filtros composáveis para consultas ao ledger.
// Campos vazios significam "sem restrição". Mes requer Ano.
// DataInicio é inclusivo; DataFim é limite superior exclusivo.
type FiltroMovimentos struct {
	TipoRecurso   string
	RecursoID     string
	TipoMovimento string
	ObraID        string
	Ano           int
	Mes           int
	DataInicio    *time.Time
	DataFim       *time.Time
}

// MovimentoRepository define o porto de persistência do ledger de movimentos.
// O store é append-only: não existem operações de update nem delete, e List
// devolve sempre os eventos por data ascendente (empates por sequência de
// inserção) para que a agregação a jusante seja determinística.
type MovimentoRepository interface {
	Create(m *entity.Movimento) error
	GetByID(id string) (*entity.Movimento, error)
	List(filtro FiltroMovimentos) ([]*entity.Movimento, error)
}
