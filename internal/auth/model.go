package auth

import "time"

// Usuario é a conta de acesso ao back-office.
type Usuario struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null;uniqueIndex" json:"email"`
	Senha     string     `gorm:"not null" json:"-"`
	IsAdmin   bool       `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }
