package cliente

import (
	"gorm.io/gorm"
)

// Filtros opcionais de listagem de clientes.
type Filtros struct {
	IsActive            *bool
	HasMonthlyVariation *bool
	OwnerID             *uint
}

// Repository encapsula operações de banco para Cliente
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Cliente) error {
	return r.DB.Create(c).Error
}

// BuscarAtivoPorID retorna o cliente somente se estiver ativo.
func (r *Repository) BuscarAtivoPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// BuscarPorID retorna o cliente independente do flag is_active.
func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Listar(f Filtros) ([]Cliente, error) {
	query := r.DB.Model(&Cliente{})
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}
	if f.HasMonthlyVariation != nil {
		query = query.Where("has_monthly_variation = ?", *f.HasMonthlyVariation)
	}
	if f.OwnerID != nil {
		query = query.Where("owner_id = ?", *f.OwnerID)
	}
	var list []Cliente
	err := query.Find(&list).Error
	return list, err
}

// ListarAtivos retorna todos os clientes ativos.
func (r *Repository) ListarAtivos() ([]Cliente, error) {
	var list []Cliente
	err := r.DB.Where("is_active = ?", true).Find(&list).Error
	return list, err
}

// ListarAtivosComInicio retorna os clientes ativos com data de início de
// contrato definida, base do cálculo de reajuste.
func (r *Repository) ListarAtivosComInicio() ([]Cliente, error) {
	var list []Cliente
	err := r.DB.Where("is_active = ? AND start_date IS NOT NULL", true).Find(&list).Error
	return list, err
}

func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

// Desativar marca o cliente como inativo (exclusão lógica).
func (r *Repository) Desativar(id uint) (bool, error) {
	res := r.DB.Model(&Cliente{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Deletar remove o registro em definitivo. Somente o utilitário de linha de
// comando usa esta operação.
func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Cliente{}, id).Error
}
