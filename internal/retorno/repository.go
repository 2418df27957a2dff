package retorno

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para RetornoPagamento
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(ret *RetornoPagamento) error {
	return r.DB.Create(ret).Error
}

func (r *Repository) BuscarPorID(id uint) (*RetornoPagamento, error) {
	var ret RetornoPagamento
	if err := r.DB.First(&ret, id).Error; err != nil {
		return nil, err
	}
	return &ret, nil
}

// BuscarPorPeriodo retorna o retorno de um cliente num mês/ano, ou nil.
// É esta consulta que garante a unicidade do período.
func (r *Repository) BuscarPorPeriodo(clientID uint, mes, ano int) (*RetornoPagamento, error) {
	var ret RetornoPagamento
	err := r.DB.Where("client_id = ? AND month = ? AND year = ?", clientID, mes, ano).First(&ret).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// Listar aplica filtros opcionais, mais recentes primeiro.
func (r *Repository) Listar(clientID uint, mes, ano int) ([]RetornoPagamento, error) {
	query := r.DB.Model(&RetornoPagamento{})
	if clientID != 0 {
		query = query.Where("client_id = ?", clientID)
	}
	if mes != 0 {
		query = query.Where("month = ?", mes)
	}
	if ano != 0 {
		query = query.Where("year = ?", ano)
	}
	var list []RetornoPagamento
	err := query.Order("processed_at DESC").Find(&list).Error
	return list, err
}

// ListarPorClientes retorna os retornos de um conjunto de clientes,
// mais recentes primeiro.
func (r *Repository) ListarPorClientes(clientIDs []uint, mes, ano int) ([]RetornoPagamento, error) {
	query := r.DB.Where("client_id IN ?", clientIDs)
	if mes != 0 {
		query = query.Where("month = ?", mes)
	}
	if ano != 0 {
		query = query.Where("year = ?", ano)
	}
	var list []RetornoPagamento
	err := query.Order("processed_at DESC").Find(&list).Error
	return list, err
}
