package repository

import "github.com/jfirmino/armazem-api/internal/domain/entity"

// EquipamentoRepository define o porto de persistência para equipamentos.
type EquipamentoRepository interface {
	Create(e *entity.Equipamento) error
	GetByID(id string) (*entity.Equipamento, error)
	GetByCodigo(codigo string) (*entity.Equipamento, error)
	Update(e *entity.Equipamento) error
	// UpdateManutencao altera apenas em_manutencao e descricao_avaria,
	// deixando todos os outros campos intactos (contrato de update parcial).
	UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error
	List(q string, limit, offset int) ([]*entity.Equipamento, error)
	ListAtivos() ([]*entity.Equipamento, error)
	Delete(id string) error
}
