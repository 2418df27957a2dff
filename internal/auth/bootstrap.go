package auth

import (
	"os"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"gorm.io/gorm"
)

// GarantirAdminInicial cria o administrador inicial quando a tabela de
// usuários está vazia, usando AUTH_ADMIN_EMAIL e AUTH_ADMIN_SENHA. Sem as
// variáveis, ou com usuários já cadastrados, não faz nada. Sem esse passo um
// banco novo com AUTH_ENABLED=true ficaria sem nenhum caminho de login.
func GarantirAdminInicial(db *gorm.DB) error {
	email := os.Getenv("AUTH_ADMIN_EMAIL")
	senha := os.Getenv("AUTH_ADMIN_SENHA")
	if email == "" || senha == "" {
		return nil
	}

	var total int64
	if err := db.Model(&Usuario{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		return err
	}
	admin := Usuario{Name: "Administrador", Email: email, Senha: hash, IsAdmin: true}
	return db.Create(&admin).Error
}
