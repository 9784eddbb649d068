package repository

import "github.com/jfirmino/armazem-api/internal/domain/entity"

// ViaturaRepository define o porto de persistência para viaturas.
type ViaturaRepository interface {
	Create(v *entity.Viatura) error
	GetByID(id string) (*entity.Viatura, error)
	GetByMatricula(matricula string) (*entity.Viatura, error)
	Update(v *entity.Viatura) error
	// UpdateManutencao altera apenas em_manutencao e descricao_avaria.
	UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error
	List(q string, limit, offset int) ([]*entity.Viatura, error)
	ListAtivos() ([]*entity.Viatura, error)
	Delete(id string) error
}
