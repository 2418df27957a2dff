package calculomensal

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para CalculoMensal
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorPeriodo retorna o cálculo de um cliente num mês/ano, ou nil.
func (r *Repository) BuscarPorPeriodo(clientID uint, mes, ano int) (*CalculoMensal, error) {
	return BuscarPorPeriodo(r.DB, clientID, mes, ano)
}

// BuscarPorPeriodo na forma transacional, usada dentro da unidade de
// trabalho de cada cliente no processamento em lote.
func BuscarPorPeriodo(db *gorm.DB, clientID uint, mes, ano int) (*CalculoMensal, error) {
	var calc CalculoMensal
	err := db.Where("client_id = ? AND month = ? AND year = ?", clientID, mes, ano).First(&calc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

// Listar aplica filtros opcionais (zero = sem filtro).
func (r *Repository) Listar(clientID uint, mes, ano int) ([]CalculoMensal, error) {
	query := r.DB.Model(&CalculoMensal{})
	if clientID != 0 {
		query = query.Where("client_id = ?", clientID)
	}
	if mes != 0 {
		query = query.Where("month = ?", mes)
	}
	if ano != 0 {
		query = query.Where("year = ?", ano)
	}
	var list []CalculoMensal
	err := query.Find(&list).Error
	return list, err
}

// ListarPorClientes retorna os cálculos de um conjunto de clientes.
func (r *Repository) ListarPorClientes(clientIDs []uint, mes, ano int) ([]CalculoMensal, error) {
	query := r.DB.Where("client_id IN ?", clientIDs)
	if mes != 0 {
		query = query.Where("month = ?", mes)
	}
	if ano != 0 {
		query = query.Where("year = ?", ano)
	}
	var list []CalculoMensal
	err := query.Find(&list).Error
	return list, err
}
