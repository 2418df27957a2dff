package valoresvariaveis

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para ValoresVariaveis
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorPeriodo retorna o registro de um cliente num mês/ano, ou nil se
// não existir.
func (r *Repository) BuscarPorPeriodo(clientID uint, mes, ano int) (*ValoresVariaveis, error) {
	return BuscarPorPeriodo(r.DB, clientID, mes, ano)
}

// BuscarPorPeriodo é a variante que roda numa transação arbitrária; o motor
// de cálculo usa esta forma dentro da unidade de trabalho de cada cliente.
func BuscarPorPeriodo(db *gorm.DB, clientID uint, mes, ano int) (*ValoresVariaveis, error) {
	var vv ValoresVariaveis
	err := db.Where("client_id = ? AND month = ? AND year = ?", clientID, mes, ano).First(&vv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vv, nil
}

// Listar aplica filtros opcionais (zero = sem filtro).
func (r *Repository) Listar(clientID uint, mes, ano int) ([]ValoresVariaveis, error) {
	query := r.DB.Model(&ValoresVariaveis{})
	if clientID != 0 {
		query = query.Where("client_id = ?", clientID)
	}
	if mes != 0 {
		query = query.Where("month = ?", mes)
	}
	if ano != 0 {
		query = query.Where("year = ?", ano)
	}
	var list []ValoresVariaveis
	err := query.Find(&list).Error
	return list, err
}

func (r *Repository) Criar(vv *ValoresVariaveis) error {
	return r.DB.Create(vv).Error
}

func (r *Repository) Atualizar(vv *ValoresVariaveis) error {
	return r.DB.Save(vv).Error
}

func (r *Repository) Deletar(vv *ValoresVariaveis) error {
	return r.DB.Delete(vv).Error
}
