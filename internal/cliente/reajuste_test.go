package cliente_test

import (
	"testing"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
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
	if err := db.AutoMigrate(&cliente.Cliente{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dia(ano, mes, d int) time.Time {
	return time.Date(ano, time.Month(mes), d, 0, 0, 0, 0, time.UTC)
}

func novoClienteComInicio(t *testing.T, db *gorm.DB, nome string, inicio time.Time, notas string) cliente.Cliente {
	t.Helper()
	c := cliente.Cliente{
		Name:      nome,
		OwnerID:   1,
		Status:    "Ativo",
		StartDate: &inicio,
		Notes:     notas,
		IsActive:  true,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create cliente: %v", err)
	}
	return c
}

func TestProximoReajuste(t *testing.T) {
	casos := []struct {
		nome     string
		inicio   time.Time
		hoje     time.Time
		esperado time.Time
	}{
		{"aniversário já passou", dia(2023, 1, 15), dia(2024, 1, 20), dia(2025, 1, 15)},
		{"aniversário ainda neste ano", dia(2023, 1, 15), dia(2024, 1, 10), dia(2024, 1, 15)},
		{"aniversário é hoje", dia(2023, 1, 15), dia(2024, 1, 15), dia(2024, 1, 15)},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			got := cliente.ProximoReajuste(caso.inicio, caso.hoje)
			if !got.Equal(caso.esperado) {
				t.Errorf("ProximoReajuste(%v, %v) = %v, esperado %v",
					caso.inicio.Format("2006-01-02"), caso.hoje.Format("2006-01-02"),
					got.Format("2006-01-02"), caso.esperado.Format("2006-01-02"))
			}
		})
	}
}

func TestProximoReajusteFevereiro29(t *testing.T) {
	// em ano não bissexto a normalização do Go leva 29/02 para 01/03
	got := cliente.ProximoReajuste(dia(2024, 2, 29), dia(2025, 1, 10))
	if !got.Equal(dia(2025, 3, 1)) {
		t.Errorf("aniversário 29/02 em 2025 = %v, esperado 2025-03-01", got.Format("2006-01-02"))
	}
}

func TestVerificarReajustesMarcaObservacoes(t *testing.T) {
	db := setupTestDB(t)
	repo := cliente.NewRepository(db)

	// hoje em dezembro: mês seguinte vira 1 com o ano incrementado
	hoje := dia(2024, 12, 20)
	comReajuste := novoClienteComInicio(t, db, "Empresa A", dia(2023, 1, 15), "Cliente pontual")
	novoClienteComInicio(t, db, "Empresa B", dia(2023, 6, 1), "")

	resultado, err := cliente.VerificarReajustes(repo, hoje)
	if err != nil {
		t.Fatalf("verificar: %v", err)
	}
	if resultado.Total != 1 {
		t.Fatalf("total = %d, esperado 1", resultado.Total)
	}
	if resultado.ContratosReajuste[0].NextAdjustment != "2025-01-15" {
		t.Errorf("next_adjustment = %s, esperado 2025-01-15", resultado.ContratosReajuste[0].NextAdjustment)
	}

	atual, err := repo.BuscarPorID(comReajuste.ID)
	if err != nil {
		t.Fatalf("buscar: %v", err)
	}
	if atual.Notes != "Cliente pontual; REAJUSTE" {
		t.Errorf("notes = %q, esperado marcador anexado", atual.Notes)
	}

	// reexecução não duplica o marcador
	if _, err := cliente.VerificarReajustes(repo, hoje); err != nil {
		t.Fatalf("segunda verificação: %v", err)
	}
	atual, err = repo.BuscarPorID(comReajuste.ID)
	if err != nil {
		t.Fatalf("buscar: %v", err)
	}
	if atual.Notes != "Cliente pontual; REAJUSTE" {
		t.Errorf("notes após reexecução = %q, marcador duplicado", atual.Notes)
	}
}

func TestVerificarReajustesObservacoesVazias(t *testing.T) {
	db := setupTestDB(t)
	repo := cliente.NewRepository(db)

	c := novoClienteComInicio(t, db, "Empresa C", dia(2023, 7, 10), "")
	if _, err := cliente.VerificarReajustes(repo, dia(2024, 6, 20)); err != nil {
		t.Fatalf("verificar: %v", err)
	}

	atual, err := repo.BuscarPorID(c.ID)
	if err != nil {
		t.Fatalf("buscar: %v", err)
	}
	if atual.Notes != "REAJUSTE" {
		t.Errorf("notes = %q, esperado apenas o marcador", atual.Notes)
	}
}

func TestReajustesProximosTresMeses(t *testing.T) {
	db := setupTestDB(t)
	repo := cliente.NewRepository(db)

	hoje := dia(2024, 6, 1)
	dentro := novoClienteComInicio(t, db, "Dentro", dia(2023, 6, 15), "")
	limite := novoClienteComInicio(t, db, "No limite", dia(2023, 9, 1), "")
	novoClienteComInicio(t, db, "Fora", dia(2023, 10, 1), "")

	result, err := cliente.ReajustesProximosTresMeses(repo, hoje)
	if err != nil {
		t.Fatalf("horizonte: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("esperados 2 contratos no horizonte (limite inclusivo), vieram %d", len(result))
	}

	// sem efeito colateral nas observações
	for _, c := range []cliente.Cliente{dentro, limite} {
		atual, err := repo.BuscarPorID(c.ID)
		if err != nil {
			t.Fatalf("buscar: %v", err)
		}
		if atual.Notes != "" {
			t.Errorf("cliente %s teve as observações alteradas: %q", c.Name, atual.Notes)
		}
	}
}
