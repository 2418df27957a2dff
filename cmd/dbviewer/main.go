// Ferramenta de linha de comando para inspecionar e popular o banco.
//
// Uso:
//
//	dbviewer list [-active true|false] [-owner-id N]
//	dbviewer view <id>
//	dbviewer add -name NOME -owner-id N [-status S] [-due-date D] [-amount-paid V] [-notes TXT]
//	dbviewer delete <id> [-soft]
//	dbviewer tables
//	dbviewer seed
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/proprietario"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils/db"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		uso()
		os.Exit(1)
	}

	conexao, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}

	switch os.Args[1] {
	case "list":
		listar(conexao, os.Args[2:])
	case "view":
		visualizar(conexao, os.Args[2:])
	case "add":
		adicionar(conexao, os.Args[2:])
	case "delete":
		excluir(conexao, os.Args[2:])
	case "tables":
		tabelas(conexao)
	case "seed":
		popular(conexao)
	default:
		uso()
		os.Exit(1)
	}
}

func uso() {
	fmt.Fprintln(os.Stderr, "Comandos: list | view <id> | add | delete <id> | tables | seed")
}

func listar(conexao *gorm.DB, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	ativo := fs.String("active", "", "Filtrar por clientes ativos (true/false)")
	ownerID := fs.Uint("owner-id", 0, "Filtrar por ID do proprietário")
	_ = fs.Parse(args)

	var filtros cliente.Filtros
	if *ativo != "" {
		v := *ativo == "true"
		filtros.IsActive = &v
	}
	if *ownerID != 0 {
		filtros.OwnerID = ownerID
	}

	repo := cliente.NewRepository(conexao)
	clientes, err := repo.Listar(filtros)
	if err != nil {
		log.Fatal("Erro ao listar clientes: ", err)
	}
	if len(clientes) == 0 {
		fmt.Println("Nenhum cliente encontrado.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Locatário", "Proprietário", "Situação", "Vencimento", "Valor Pago"})
	for _, c := range clientes {
		venc := "-"
		if c.DueDate != nil {
			venc = strconv.Itoa(*c.DueDate)
		}
		table.Append([]string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.Name,
			strconv.FormatUint(uint64(c.OwnerID), 10),
			c.Status,
			venc,
			fmt.Sprintf("%.2f", c.AmountPaid),
		})
	}
	table.Render()
	fmt.Printf("Total de clientes: %d\n", len(clientes))
}

func visualizar(conexao *gorm.DB, args []string) {
	if len(args) < 1 {
		log.Fatal("Informe o ID do cliente")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatal("ID inválido: ", args[0])
	}

	repo := cliente.NewRepository(conexao)
	c, err := repo.BuscarPorID(uint(id))
	if err != nil {
		fmt.Printf("Cliente com ID %d não encontrado.\n", id)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Campo", "Valor"})
	linhas := [][2]string{
		{"id", strconv.FormatUint(uint64(c.ID), 10)},
		{"name", c.Name},
		{"owner_id", strconv.FormatUint(uint64(c.OwnerID), 10)},
		{"status", c.Status},
		{"due_date", intOuVazio(c.DueDate)},
		{"amount_paid", fmt.Sprintf("%.2f", c.AmountPaid)},
		{"property_tax", fmt.Sprintf("%.2f", c.PropertyTax)},
		{"interest", fmt.Sprintf("%.2f", c.Interest)},
		{"utilities", fmt.Sprintf("%.2f", c.Utilities)},
		{"insurance", fmt.Sprintf("%.2f", c.Insurance)},
		{"condo_fee", fmt.Sprintf("%.2f", c.CondoFee)},
		{"percentage", fmt.Sprintf("%.2f", c.Percentage)},
		{"delivery_fee", fmt.Sprintf("%.2f", c.DeliveryFee)},
		{"start_date", dataOuVazio(c.StartDate)},
		{"condo_paid", strconv.FormatBool(c.CondoPaid)},
		{"withdrawal_date", dataOuVazio(c.WithdrawalDate)},
		{"withdrawal_number", c.WithdrawalNumber},
		{"payment_date", dataOuVazio(c.PaymentDate)},
		{"notes", c.Notes},
		{"has_monthly_variation", strconv.FormatBool(c.HasMonthlyVariation)},
		{"is_active", strconv.FormatBool(c.IsActive)},
	}
	for _, l := range linhas {
		table.Append([]string{l[0], l[1]})
	}
	table.Render()
}

func intOuVazio(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func dataOuVazio(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func adicionar(conexao *gorm.DB, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	nome := fs.String("name", "", "Nome do cliente (locatário)")
	ownerID := fs.Uint("owner-id", 0, "ID do proprietário")
	status := fs.String("status", "Ativo", "Situação do cliente")
	vencimento := fs.Int("due-date", 0, "Dia de vencimento")
	valorPago := fs.Float64("amount-paid", 0, "Valor pago")
	notas := fs.String("notes", "", "Observações")
	_ = fs.Parse(args)

	if *nome == "" || *ownerID == 0 {
		log.Fatal("Os parâmetros -name e -owner-id são obrigatórios")
	}

	c := cliente.Cliente{
		Name:       *nome,
		OwnerID:    *ownerID,
		Status:     *status,
		AmountPaid: *valorPago,
		Notes:      *notas,
		IsActive:   true,
	}
	if *vencimento != 0 {
		c.DueDate = vencimento
	}

	repo := cliente.NewRepository(conexao)
	if err := repo.Criar(&c); err != nil {
		log.Fatal("Erro ao adicionar cliente: ", err)
	}
	fmt.Printf("Cliente adicionado com sucesso! ID: %d\n", c.ID)
}

func excluir(conexao *gorm.DB, args []string) {
	if len(args) < 1 {
		log.Fatal("Informe o ID do cliente")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatal("ID inválido: ", args[0])
	}

	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	soft := fs.Bool("soft", false, "Exclusão lógica (marcar como inativo)")
	_ = fs.Parse(args[1:])

	repo := cliente.NewRepository(conexao)
	if _, err := repo.BuscarPorID(uint(id)); err != nil {
		fmt.Printf("Cliente com ID %d não encontrado.\n", id)
		return
	}

	if *soft {
		if _, err := repo.Desativar(uint(id)); err != nil {
			log.Fatal("Erro ao desativar cliente: ", err)
		}
		fmt.Printf("Cliente com ID %d marcado como inativo.\n", id)
		return
	}
	if err := repo.Deletar(uint(id)); err != nil {
		log.Fatal("Erro ao excluir cliente: ", err)
	}
	fmt.Printf("Cliente com ID %d removido permanentemente do banco de dados.\n", id)
}

func tabelas(conexao *gorm.DB) {
	tabelas, err := conexao.Migrator().GetTables()
	if err != nil {
		log.Fatal("Erro ao listar tabelas: ", err)
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tabela", "Registros"})
	for _, t := range tabelas {
		var total int64
		if err := conexao.Table(t).Count(&total).Error; err != nil {
			continue
		}
		table.Append([]string{t, strconv.FormatInt(total, 10)})
	}
	table.Render()
}

func popular(conexao *gorm.DB) {
	propRepo := proprietario.NewRepository(conexao)
	clienteRepo := cliente.NewRepository(conexao)

	proprietarios, err := propRepo.ListarTodos()
	if err != nil {
		log.Fatal("Erro ao consultar proprietários: ", err)
	}
	if len(proprietarios) == 0 {
		for _, nome := range []string{"João Silva", "Maria Oliveira", "Carlos Santos", "Ana Pereira"} {
			p := proprietario.Proprietario{Name: nome}
			if err := propRepo.Criar(&p); err != nil {
				log.Fatal("Erro ao criar proprietário: ", err)
			}
			proprietarios = append(proprietarios, p)
		}
		fmt.Printf("Adicionados %d proprietários de exemplo ao banco de dados.\n", len(proprietarios))
	} else {
		fmt.Println("Banco de dados já possui proprietários. Pulando seed.")
	}

	existentes, err := clienteRepo.Listar(cliente.Filtros{})
	if err != nil {
		log.Fatal("Erro ao consultar clientes: ", err)
	}
	if len(existentes) > 0 {
		fmt.Println("Banco de dados já possui clientes. Pulando seed.")
		return
	}

	clientes := clientesExemplo(proprietarios)
	for i := range clientes {
		if err := clienteRepo.Criar(&clientes[i]); err != nil {
			log.Fatal("Erro ao criar cliente: ", err)
		}
		// o default:true do gorm ignora o zero value no insert
		if !clientes[i].IsActive {
			if _, err := clienteRepo.Desativar(clientes[i].ID); err != nil {
				log.Fatal("Erro ao desativar cliente de exemplo: ", err)
			}
		}
	}
	fmt.Printf("Adicionados %d clientes de exemplo ao banco de dados.\n", len(clientes))
}

func clientesExemplo(proprietarios []proprietario.Proprietario) []cliente.Cliente {
	dia := func(d int) *int { return &d }
	data := func(ano, mes, d int) *time.Time {
		t := time.Date(ano, time.Month(mes), d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return []cliente.Cliente{
		{
			Name: "Empresa A", OwnerID: proprietarios[0].ID, Status: "Ativo",
			DueDate: dia(10), AmountPaid: 1500.00, PropertyTax: 200.00,
			Utilities: 150.00, Insurance: 50.00, CondoFee: 300.00,
			Percentage: 10.0, DeliveryFee: 15.00, StartDate: data(2023, 1, 1),
			CondoPaid: true, WithdrawalDate: data(2023, 3, 15), WithdrawalNumber: "12345",
			PaymentDate: data(2023, 3, 10), Notes: "Cliente pontual",
			HasMonthlyVariation: true, IsActive: true,
		},
		{
			Name: "Empresa B", OwnerID: proprietarios[0].ID, Status: "Ativo",
			DueDate: dia(15), AmountPaid: 2000.00, PropertyTax: 250.00,
			Utilities: 200.00, Insurance: 75.00, CondoFee: 400.00,
			Percentage: 8.0, DeliveryFee: 15.00, StartDate: data(2023, 2, 1),
			CondoPaid: true, WithdrawalDate: data(2023, 3, 20), WithdrawalNumber: "12346",
			PaymentDate: data(2023, 3, 15), Notes: "Contrato renovado recentemente",
			IsActive: true,
		},
		{
			Name: "Empresa C", OwnerID: proprietarios[1].ID, Status: "Ativo",
			DueDate: dia(20), AmountPaid: 1800.00, PropertyTax: 220.00,
			Interest: 10.00, Utilities: 180.00, Insurance: 60.00, CondoFee: 350.00,
			Percentage: 9.0, DeliveryFee: 15.00, StartDate: data(2022, 10, 1),
			WithdrawalDate: data(2023, 3, 25), WithdrawalNumber: "12347",
			PaymentDate: data(2023, 3, 22), Notes: "Pagamento com atraso frequente",
			HasMonthlyVariation: true, IsActive: true,
		},
		{
			Name: "Empresa D", OwnerID: proprietarios[2].ID, Status: "Inativo",
			DueDate: dia(5), AmountPaid: 1200.00, PropertyTax: 180.00,
			Utilities: 120.00, Insurance: 40.00, CondoFee: 250.00,
			Percentage: 7.0, DeliveryFee: 15.00, StartDate: data(2022, 5, 1),
			CondoPaid: true, WithdrawalDate: data(2023, 2, 10), WithdrawalNumber: "12348",
			PaymentDate: data(2023, 2, 5), Notes: "Contrato encerrado",
		},
	}
}
