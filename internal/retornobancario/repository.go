package retornobancario

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para RetornoBancario
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) BuscarPorPeriodo(clientID uint, mes, ano int) (*RetornoBancario, error) {
	var ret RetornoBancario
	err := r.DB.Where("client_id = ? AND month = ? AND year = ?", clientID, mes, ano).First(&ret).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (r *Repository) Criar(ret *RetornoBancario) error {
	return r.DB.Create(ret).Error
}

func (r *Repository) Atualizar(ret *RetornoBancario) error {
	return r.DB.Save(ret).Error
}

// ListarDoMesComClienteAtivo retorna os retornos do mês cujos clientes
// seguem ativos.
func (r *Repository) ListarDoMesComClienteAtivo(mes, ano int) ([]RetornoBancario, error) {
	var list []RetornoBancario
	err := r.DB.
		Joins("JOIN clientes ON clientes.id = retornos_bancarios.client_id").
		Where("retornos_bancarios.month = ? AND retornos_bancarios.year = ? AND clientes.is_active = ?", mes, ano, true).
		Find(&list).Error
	return list, err
}
