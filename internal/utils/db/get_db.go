package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB abre a conexão com o Postgres a partir das variáveis de ambiente.
// DB_PORT ausente ou inválida cai no padrão 5432.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	nome := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")

	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	return ConnectDataBase(uint(porta), host, nome, secretID)
}
