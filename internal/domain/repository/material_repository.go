package repository

import "github.com/jfirmino/armazem-api/internal/domain/entity"

// MaterialRepository define o porto de persistência para materiais.
// O stock atual não é um campo do registo: deriva sempre do ledger.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCodigo(codigo string) (*entity.Material, error)
	Update(m *entity.Material) error
	List(q string, limit, offset int) ([]*entity.Material, error)
	ListAtivos() ([]*entity.Material, error)
	Delete(id string) error
}
