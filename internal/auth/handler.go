package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"gorm.io/gorm"
)

type loginDTO struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type criarUsuarioDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Senha   string `json:"senha" validate:"required,min=8"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginHandler autentica por email+senha e devolve o access token.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.EscreverErro(w, "Corpo da requisição inválido")
			return
		}
		if err := utils.ValidarStruct(req); err != nil {
			utils.EscreverErro(w, err.Error())
			return
		}

		var user Usuario
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.Error(w, "Usuário ou senha incorretos", http.StatusUnauthorized)
				return
			}
			utils.EscreverFalha(w, err.Error())
			return
		}
		if !utils.VerificarSenha(user.Senha, req.Senha) {
			http.Error(w, "Usuário ou senha incorretos", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(user.ID, user.IsAdmin)
		if err != nil {
			utils.EscreverFalha(w, err.Error())
			return
		}
		utils.EscreverDados(w, http.StatusOK, map[string]interface{}{
			"access_token": token,
			"token_type":   "bearer",
			"expires_in":   int(AccessTTL.Seconds()),
		})
	}
}

// RegistrarHandler cria um usuário do back-office. Rota protegida por admin.
func RegistrarHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req criarUsuarioDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.EscreverErro(w, "Corpo da requisição inválido")
			return
		}
		if err := utils.ValidarStruct(req); err != nil {
			utils.EscreverErro(w, err.Error())
			return
		}

		hash, err := utils.HashSenha(req.Senha)
		if err != nil {
			utils.EscreverFalha(w, err.Error())
			return
		}
		user := Usuario{Name: req.Name, Email: req.Email, Senha: hash, IsAdmin: req.IsAdmin}
		if err := db.Create(&user).Error; err != nil {
			utils.EscreverErro(w, "Não foi possível criar o usuário: e-mail já cadastrado?")
			return
		}
		utils.EscreverDados(w, http.StatusCreated, user)
	}
}
