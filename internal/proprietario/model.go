package proprietario

import (
	"time"
)

// Proprietario representa o locador dono de um ou mais imóveis administrados
type Proprietario struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Proprietario) TableName() string { return "proprietarios" }
