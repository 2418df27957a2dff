package auth

import (
	"testing"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("AUTH_SECRET", "segredo-de-teste")

	token, err := GerarToken(7, true)
	if err != nil {
		t.Fatalf("gerar: %v", err)
	}

	claims, err := ValidarToken(token)
	if err != nil {
		t.Fatalf("validar: %v", err)
	}
	if claims.UserID != 7 || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("jti ausente")
	}
}

func TestValidarTokenComSegredoErrado(t *testing.T) {
	t.Setenv("AUTH_SECRET", "segredo-a")
	token, err := GerarToken(1, false)
	if err != nil {
		t.Fatalf("gerar: %v", err)
	}

	t.Setenv("AUTH_SECRET", "segredo-b")
	if _, err := ValidarToken(token); err == nil {
		t.Fatal("token assinado com outro segredo deveria ser rejeitado")
	}
}

func TestGerarTokenSemSegredo(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	if _, err := GerarToken(1, false); err == nil {
		t.Fatal("AUTH_SECRET ausente deveria falhar")
	}
}
