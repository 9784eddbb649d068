package repository

import "github.com/jfirmino/armazem-api/internal/domain/entity"

// ObraRepository define o porto de persistência para obras.
type ObraRepository interface {
	Create(o *entity.Obra) error
	GetByID(id string) (*entity.Obra, error)
	GetByCodigo(codigo string) (*entity.Obra, error)
	Update(o *entity.Obra) error
	List(q string, limit, offset int) ([]*entity.Obra, error)
	// ListTodas devolve todas as obras, incluindo concluídas/suspensas;
	// usado para enriquecer movimentos históricos com o nome da obra.
	ListTodas() ([]*entity.Obra, error)
	Delete(id string) error
}
