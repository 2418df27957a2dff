package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Usuario{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGarantirAdminInicialCriaPrimeiroUsuario(t *testing.T) {
	t.Setenv("AUTH_ADMIN_EMAIL", "admin@imobiliaria.com.br")
	t.Setenv("AUTH_ADMIN_SENHA", "senha-inicial-forte")
	db := setupTestDB(t)

	if err := GarantirAdminInicial(db); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	var admin Usuario
	if err := db.Where("email = ?", "admin@imobiliaria.com.br").First(&admin).Error; err != nil {
		t.Fatalf("admin não foi criado: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("admin inicial deveria ser administrador")
	}
	if !utils.VerificarSenha(admin.Senha, "senha-inicial-forte") {
		t.Error("senha do admin inicial não confere")
	}

	// rodar de novo não duplica
	if err := GarantirAdminInicial(db); err != nil {
		t.Fatalf("segundo bootstrap: %v", err)
	}
	var total int64
	db.Model(&Usuario{}).Count(&total)
	if total != 1 {
		t.Errorf("total de usuários = %d, esperado 1", total)
	}
}

func TestGarantirAdminInicialSemVariaveis(t *testing.T) {
	t.Setenv("AUTH_ADMIN_EMAIL", "")
	t.Setenv("AUTH_ADMIN_SENHA", "")
	db := setupTestDB(t)

	if err := GarantirAdminInicial(db); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	var total int64
	db.Model(&Usuario{}).Count(&total)
	if total != 0 {
		t.Errorf("sem variáveis de ambiente nada deveria ser criado, total = %d", total)
	}
}

func TestGarantirAdminInicialNaoSobrescreveUsuarios(t *testing.T) {
	t.Setenv("AUTH_ADMIN_EMAIL", "admin@imobiliaria.com.br")
	t.Setenv("AUTH_ADMIN_SENHA", "senha-inicial-forte")
	db := setupTestDB(t)

	hash, err := utils.HashSenha("outra-senha")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	existente := Usuario{Name: "Fulano", Email: "fulano@imobiliaria.com.br", Senha: hash}
	if err := db.Create(&existente).Error; err != nil {
		t.Fatalf("criar usuário existente: %v", err)
	}

	if err := GarantirAdminInicial(db); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	var total int64
	db.Model(&Usuario{}).Count(&total)
	if total != 1 {
		t.Errorf("bootstrap com usuários existentes não deveria criar nada, total = %d", total)
	}
}

// Banco novo: bootstrap seguido de login deve emitir um token válido.
func TestLoginAposBootstrap(t *testing.T) {
	t.Setenv("AUTH_ADMIN_EMAIL", "admin@imobiliaria.com.br")
	t.Setenv("AUTH_ADMIN_SENHA", "senha-inicial-forte")
	t.Setenv("AUTH_SECRET", "segredo-de-teste")
	db := setupTestDB(t)

	if err := GarantirAdminInicial(db); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	corpo := `{"email": "admin@imobiliaria.com.br", "senha": "senha-inicial-forte"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	LoginHandler(db)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decodificar resposta: %v", err)
	}
	if resp.Data.TokenType != "bearer" {
		t.Errorf("token_type = %q", resp.Data.TokenType)
	}
	claims, err := ValidarToken(resp.Data.AccessToken)
	if err != nil {
		t.Fatalf("token emitido no login não validou: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("admin inicial deveria emitir token de administrador")
	}
}
