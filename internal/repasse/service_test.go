package repasse_test

import (
	"testing"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/calculomensal"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/repasse"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/valoresvariaveis"
	"go.uber.org/zap"
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
	if err := db.AutoMigrate(&cliente.Cliente{}, &valoresvariaveis.ValoresVariaveis{}, &calculomensal.CalculoMensal{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func novoService(db *gorm.DB) *repasse.Service {
	return repasse.NewService(
		cliente.NewRepository(db),
		calculomensal.NewRepository(db),
		valoresvariaveis.NewRepository(db),
		zap.NewNop(),
	)
}

func criarClienteComCalculo(t *testing.T, db *gorm.DB, nome string, ownerID uint, rent, commission, deposit float64) cliente.Cliente {
	t.Helper()
	c := cliente.Cliente{
		Name: nome, OwnerID: ownerID, Status: "Ativo",
		CondoFee: 300.00, DeliveryFee: 15.00, Percentage: 10.0, IsActive: true,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create cliente: %v", err)
	}
	calc := calculomensal.CalculoMensal{
		ClientID: c.ID, Month: 6, Year: 2024,
		RentAmount: rent, Commission: commission, DepositAmount: deposit,
	}
	if err := db.Create(&calc).Error; err != nil {
		t.Fatalf("create calculo: %v", err)
	}
	return c
}

func TestRelatorioSomaTotais(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	criarClienteComCalculo(t, db, "Empresa A", 1, 1850.00, 115.00, 1420.00)
	criarClienteComCalculo(t, db, "Empresa B", 1, 2000.00, 160.00, 1825.00)

	// cliente ativo sem cálculo no período: entra no total de imóveis mas
	// não vira linha do relatório
	semCalculo := cliente.Cliente{Name: "Empresa C", OwnerID: 1, Status: "Ativo", IsActive: true}
	if err := db.Create(&semCalculo).Error; err != nil {
		t.Fatalf("create cliente: %v", err)
	}

	itens, resumo, mes, ano, err := s.RelatorioProprietario(1, 6, 2024)
	if err != nil {
		t.Fatalf("relatório: %v", err)
	}
	if mes != 6 || ano != 2024 {
		t.Errorf("período = %d/%d, esperado 6/2024", mes, ano)
	}
	if len(itens) != 2 {
		t.Fatalf("esperadas 2 linhas (cliente sem cálculo omitido), vieram %d", len(itens))
	}
	if resumo.TotalProperties != 3 {
		t.Errorf("total_properties = %d, esperado 3", resumo.TotalProperties)
	}
	if resumo.TotalRent != 3850.00 {
		t.Errorf("total_rent = %.2f, esperado 3850.00", resumo.TotalRent)
	}
	if resumo.TotalCommission != 275.00 {
		t.Errorf("total_commission = %.2f, esperado 275.00", resumo.TotalCommission)
	}
	if resumo.TotalDeposit != 3245.00 {
		t.Errorf("total_deposit = %.2f, esperado 3245.00", resumo.TotalDeposit)
	}
	if resumo.TotalDeliveryFees != 30.00 {
		t.Errorf("total_delivery_fees = %.2f, esperado 30.00", resumo.TotalDeliveryFees)
	}
}

func TestRelatorioAplicaOverridesDeCondominio(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	c := criarClienteComCalculo(t, db, "Empresa A", 1, 1850.00, 115.00, 1420.00)
	if err := db.Model(&c).Update("has_monthly_variation", true).Error; err != nil {
		t.Fatalf("marcar variação: %v", err)
	}

	condominio := 999.00
	pago := true
	vv := valoresvariaveis.ValoresVariaveis{
		ClientID: c.ID, Month: 6, Year: 2024,
		CondoFee: &condominio, CondoPaidByAgency: &pago,
	}
	if err := db.Create(&vv).Error; err != nil {
		t.Fatalf("create valores variáveis: %v", err)
	}

	itens, resumo, _, _, err := s.RelatorioProprietario(1, 6, 2024)
	if err != nil {
		t.Fatalf("relatório: %v", err)
	}
	if len(itens) != 1 {
		t.Fatalf("esperada 1 linha, vieram %d", len(itens))
	}
	if itens[0].CondoFee != 999.00 || !itens[0].CondoPaidByAgency {
		t.Errorf("overrides não aplicados: condo_fee=%.2f pago=%v", itens[0].CondoFee, itens[0].CondoPaidByAgency)
	}
	if resumo.TotalCondoFees != 999.00 {
		t.Errorf("total_condo_fees = %.2f, esperado 999.00", resumo.TotalCondoFees)
	}
}

func TestRelatorioIgnoraClientesDeOutroProprietario(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	criarClienteComCalculo(t, db, "Do proprietário 1", 1, 1000.00, 100.00, 885.00)
	criarClienteComCalculo(t, db, "Do proprietário 2", 2, 2000.00, 200.00, 1785.00)

	itens, resumo, _, _, err := s.RelatorioProprietario(1, 6, 2024)
	if err != nil {
		t.Fatalf("relatório: %v", err)
	}
	if len(itens) != 1 || resumo.TotalProperties != 1 {
		t.Fatalf("relatório vazou clientes de outro proprietário: %d linhas", len(itens))
	}
	if itens[0].Tenant.Name != "Do proprietário 1" {
		t.Errorf("tenant = %s", itens[0].Tenant.Name)
	}
}
