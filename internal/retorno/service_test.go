package retorno_test

import (
	"testing"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/calculomensal"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/retorno"
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
	if err := db.AutoMigrate(&cliente.Cliente{}, &calculomensal.CalculoMensal{}, &retorno.RetornoPagamento{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func novoService(db *gorm.DB) *retorno.Service {
	return retorno.NewService(
		retorno.NewRepository(db),
		cliente.NewRepository(db),
		calculomensal.NewRepository(db),
	)
}

func criarCliente(t *testing.T, db *gorm.DB, ajustes func(*cliente.Cliente)) cliente.Cliente {
	t.Helper()
	c := cliente.Cliente{
		Name:        "Empresa A",
		OwnerID:     1,
		Status:      "Ativo",
		Percentage:  10.0,
		DeliveryFee: 15.00,
		CondoFee:    300.00,
		IsActive:    true,
	}
	if ajustes != nil {
		ajustes(&c)
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create cliente: %v", err)
	}
	return c
}

func TestVencimentoGrampeadoNoFimDoMes(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	vencimento := 31
	c := criarCliente(t, db, func(c *cliente.Cliente) { c.DueDate = &vencimento })

	pagamento := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	resultado, err := s.ProcessarRetorno(c.ID, pagamento, 1500.00, 0)
	if err != nil {
		t.Fatalf("processar: %v", err)
	}
	if !resultado.Success {
		t.Fatalf("processamento rejeitado: %s", resultado.Message)
	}

	ret, err := retorno.NewRepository(db).BuscarPorID(resultado.RetornoID)
	if err != nil {
		t.Fatalf("buscar retorno: %v", err)
	}
	esperado := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	if !ret.DueDate.Equal(esperado) {
		t.Errorf("due_date = %v, esperado 2024-04-30 (abril tem 30 dias)", ret.DueDate.Format("2006-01-02"))
	}
}

func TestVencimentoPadraoDia10(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	c := criarCliente(t, db, nil) // sem dia de vencimento
	pagamento := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	resultado, err := s.ProcessarRetorno(c.ID, pagamento, 1000.00, 0)
	if err != nil {
		t.Fatalf("processar: %v", err)
	}

	ret, err := retorno.NewRepository(db).BuscarPorID(resultado.RetornoID)
	if err != nil {
		t.Fatalf("buscar retorno: %v", err)
	}
	if ret.DueDate.Day() != 10 {
		t.Errorf("due_date dia = %d, esperado 10 (padrão)", ret.DueDate.Day())
	}
}

func TestRetornoDuplicadoRejeitado(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	c := criarCliente(t, db, nil)
	pagamento := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	primeiro, err := s.ProcessarRetorno(c.ID, pagamento, 1500.00, 0)
	if err != nil {
		t.Fatalf("primeiro: %v", err)
	}
	if !primeiro.Success {
		t.Fatalf("primeiro processamento rejeitado: %s", primeiro.Message)
	}

	// mesmo período, outra data de pagamento dentro do mês
	outraData := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	segundo, err := s.ProcessarRetorno(c.ID, outraData, 1600.00, 0)
	if err != nil {
		t.Fatalf("segundo: %v", err)
	}
	if segundo.Success {
		t.Fatal("segundo processamento no mesmo mês deveria ser rejeitado")
	}

	var total int64
	if err := db.Model(&retorno.RetornoPagamento{}).Where("client_id = ?", c.ID).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("rejeição não pode gravar linha nova: esperada 1, vieram %d", total)
	}
}

func TestReusaCalculoMensalExistente(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	c := criarCliente(t, db, nil)
	calc := calculomensal.CalculoMensal{
		ClientID:   c.ID,
		Month:      6,
		Year:       2024,
		RentAmount: 1850.00,
		Commission: 115.00,
	}
	if err := db.Create(&calc).Error; err != nil {
		t.Fatalf("create calculo: %v", err)
	}

	pagamento := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	resultado, err := s.ProcessarRetorno(c.ID, pagamento, 1850.00, 5.00)
	if err != nil {
		t.Fatalf("processar: %v", err)
	}

	ret, err := retorno.NewRepository(db).BuscarPorID(resultado.RetornoID)
	if err != nil {
		t.Fatalf("buscar retorno: %v", err)
	}
	if ret.RentAmount != 1850.00 || ret.Commission != 115.00 {
		t.Errorf("retorno deveria reusar o cálculo do mês: rent=%.2f commission=%.2f", ret.RentAmount, ret.Commission)
	}

	// repasse = pago + juros - comissão - taxa envio (condomínio não pago)
	esperado := 1850.00 + 5.00 - 115.00 - 15.00
	if resultado.OwnerPaymentAmount != esperado {
		t.Errorf("owner_payment_amount = %.2f, esperado %.2f", resultado.OwnerPaymentAmount, esperado)
	}
}

func TestDescontoFixoDeCondominio(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	c := criarCliente(t, db, func(c *cliente.Cliente) { c.CondoPaid = true })
	pagamento := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	resultado, err := s.ProcessarRetorno(c.ID, pagamento, 1000.00, 0)
	if err != nil {
		t.Fatalf("processar: %v", err)
	}

	// sem cálculo prévio: comissão direta de 10% e desconto fixo de 1,
	// não o valor do condomínio (300)
	esperado := 1000.00 - 100.00 - 15.00 - 1.00
	if resultado.OwnerPaymentAmount != esperado {
		t.Errorf("owner_payment_amount = %.2f, esperado %.2f", resultado.OwnerPaymentAmount, esperado)
	}
}

func TestClienteInexistente(t *testing.T) {
	db := setupTestDB(t)
	s := novoService(db)

	resultado, err := s.ProcessarRetorno(999, time.Now(), 1000.00, 0)
	if err != nil {
		t.Fatalf("processar: %v", err)
	}
	if resultado.Success {
		t.Fatal("cliente inexistente deveria resultar em success=false")
	}
	if resultado.Message != "Cliente com ID 999 não encontrado" {
		t.Errorf("mensagem inesperada: %s", resultado.Message)
	}
}
