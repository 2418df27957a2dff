package proprietario

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Proprietario
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(p *Proprietario) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarTodos() ([]Proprietario, error) {
	var list []Proprietario
	err := r.DB.Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Proprietario, error) {
	var p Proprietario
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Atualizar(p *Proprietario) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Deletar(p *Proprietario) error {
	return r.DB.Delete(p).Error
}

// ContarClientes retorna quantos clientes estão vinculados ao proprietário.
// Usado para impedir a exclusão de proprietários com clientes.
func (r *Repository) ContarClientes(id uint) (int64, error) {
	var count int64
	err := r.DB.Table("clientes").Where("owner_id = ?", id).Count(&count).Error
	return count, err
}

// ClienteResumo é a projeção {id, name} usada na listagem de clientes do proprietário.
type ClienteResumo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListarClientesAtivos retorna id e nome dos clientes ativos do proprietário.
func (r *Repository) ListarClientesAtivos(id uint) ([]ClienteResumo, error) {
	var list []ClienteResumo
	err := r.DB.Table("clientes").
		Select("id, name").
		Where("owner_id = ? AND is_active = ?", id, true).
		Scan(&list).Error
	return list, err
}
