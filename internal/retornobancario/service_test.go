package retornobancario_test

import (
	"testing"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/retornobancario"
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
	if err := db.AutoMigrate(&cliente.Cliente{}, &retornobancario.RetornoBancario{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func novoService(db *gorm.DB) *retornobancario.Service {
	return retornobancario.NewService(retornobancario.NewRepository(db), cliente.NewRepository(db))
}

func criarCliente(t *testing.T, db *gorm.DB, nome string, ownerID uint) cliente.Cliente {
	t.Helper()
	c := cliente.Cliente{Name: nome, OwnerID: ownerID, Status: "Ativo", IsActive: true}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create cliente: %v", err)
	}
	return c
}

func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

func TestUpsertPreservaCamposNaoEnviados(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)
	c := criarCliente(t, db, "Empresa A", 1)

	criado, err := s.CriarOuAtualizar(c.ID, 6, 2024, &retornobancario.DadosRetornoDTO{
		PayerName:   ptrString("Fulano de Tal"),
		TitleAmount: ptrFloat(1850.00),
	})
	if err != nil {
		t.Fatalf("criar: %v", err)
	}

	// segunda chamada só com o valor cobrado: título e pagador ficam intactos
	atualizado, err := s.CriarOuAtualizar(c.ID, 6, 2024, &retornobancario.DadosRetornoDTO{
		ChargedAmount: ptrFloat(1860.00),
	})
	if err != nil {
		t.Fatalf("atualizar: %v", err)
	}
	if atualizado.ID != criado.ID {
		t.Fatalf("upsert criou registro novo: %d != %d", atualizado.ID, criado.ID)
	}
	if atualizado.PayerName != "Fulano de Tal" {
		t.Errorf("payer_name = %q, deveria ser preservado", atualizado.PayerName)
	}
	if atualizado.TitleAmount == nil || *atualizado.TitleAmount != 1850.00 {
		t.Error("title_amount deveria ser preservado")
	}
	if atualizado.ChargedAmount == nil || *atualizado.ChargedAmount != 1860.00 {
		t.Error("charged_amount não foi aplicado")
	}

	var total int64
	if err := db.Model(&retornobancario.RetornoBancario{}).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("esperado 1 registro, vieram %d", total)
	}
}

func TestRelatorioProprietarioSomaTotais(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	a := criarCliente(t, db, "Empresa A", 1)
	b := criarCliente(t, db, "Empresa B", 1)
	criarCliente(t, db, "Sem retorno", 1)

	if _, err := s.CriarOuAtualizar(a.ID, 6, 2024, &retornobancario.DadosRetornoDTO{
		TitleAmount:     ptrFloat(1000.00),
		ChargedAmount:   ptrFloat(1010.00),
		VariationAmount: ptrFloat(10.00),
	}); err != nil {
		t.Fatalf("criar a: %v", err)
	}
	if _, err := s.CriarOuAtualizar(b.ID, 6, 2024, &retornobancario.DadosRetornoDTO{
		TitleAmount:   ptrFloat(2000.00),
		ChargedAmount: ptrFloat(2000.00),
	}); err != nil {
		t.Fatalf("criar b: %v", err)
	}

	itens, resumo, err := s.RelatorioProprietario(1, 6, 2024)
	if err != nil {
		t.Fatalf("relatório: %v", err)
	}
	if len(itens) != 2 {
		t.Fatalf("esperadas 2 linhas (cliente sem retorno omitido), vieram %d", len(itens))
	}
	if resumo.TotalReturns != 2 {
		t.Errorf("total_returns = %d, esperado 2", resumo.TotalReturns)
	}
	if resumo.TotalTitleAmount != 3000.00 {
		t.Errorf("total_title_amount = %.2f, esperado 3000.00", resumo.TotalTitleAmount)
	}
	if resumo.TotalChargedAmount != 3010.00 {
		t.Errorf("total_charged_amount = %.2f, esperado 3010.00", resumo.TotalChargedAmount)
	}
	if resumo.TotalVariationAmount != 10.00 {
		t.Errorf("total_variation_amount = %.2f, esperado 10.00", resumo.TotalVariationAmount)
	}
}

func TestRelatorioMensalSoClientesAtivos(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	ativo := criarCliente(t, db, "Ativo", 1)
	inativo := criarCliente(t, db, "Inativo", 2)
	if err := db.Model(&inativo).Update("is_active", false).Error; err != nil {
		t.Fatalf("desativar: %v", err)
	}

	for _, c := range []cliente.Cliente{ativo, inativo} {
		if _, err := s.CriarOuAtualizar(c.ID, 7, 2024, &retornobancario.DadosRetornoDTO{
			TitleAmount: ptrFloat(500.00),
		}); err != nil {
			t.Fatalf("criar retorno: %v", err)
		}
	}

	itens, resumo, err := s.RelatorioMensal(7, 2024)
	if err != nil {
		t.Fatalf("relatório: %v", err)
	}
	if len(itens) != 1 || resumo.TotalReturns != 1 {
		t.Fatalf("relatório mensal deveria conter só clientes ativos: %d linhas", len(itens))
	}
	if itens[0].Client.Name != "Ativo" {
		t.Errorf("client = %s", itens[0].Client.Name)
	}
}
