package repository

import "github.com/jfirmino/armazem-api/internal/domain/entity"

// UserRepository define o porto de persistência para utilizadores.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
