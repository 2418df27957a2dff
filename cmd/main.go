package main

import (
	"log"
	"net/http"
	"os"

	"github.com/SecretGardenImoveis/api-imobiliaria/internal/auth"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/calculomensal"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/cliente"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/health"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/proprietario"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/repasse"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/retorno"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/retornobancario"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/utils/db"
	"github.com/SecretGardenImoveis/api-imobiliaria/internal/valoresvariaveis"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Erro ao iniciar o logger:", err)
	}
	defer logger.Sync()

	conexao, err := db.GetDB()
	if err != nil {
		logger.Fatal("Erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := conexao.AutoMigrate(
		&proprietario.Proprietario{},
		&cliente.Cliente{},
		&valoresvariaveis.ValoresVariaveis{},
		&calculomensal.CalculoMensal{},
		&retorno.RetornoPagamento{},
		&retornobancario.RetornoBancario{},
		&auth.Usuario{},
	); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}

	// Banco novo precisa de um primeiro admin para o login funcionar
	if err := auth.GarantirAdminInicial(conexao); err != nil {
		logger.Fatal("Erro ao criar o administrador inicial", zap.Error(err))
	}

	// Repositórios
	proprietarioRepo := proprietario.NewRepository(conexao)
	clienteRepo := cliente.NewRepository(conexao)
	valoresRepo := valoresvariaveis.NewRepository(conexao)
	calculoRepo := calculomensal.NewRepository(conexao)
	retornoRepo := retorno.NewRepository(conexao)
	retornoBancarioRepo := retornobancario.NewRepository(conexao)

	// Serviços
	calculoService := calculomensal.NewService(conexao, clienteRepo, logger)
	valoresService := valoresvariaveis.NewService(valoresRepo, clienteRepo)
	retornoService := retorno.NewService(retornoRepo, clienteRepo, calculoRepo)
	retornoBancarioService := retornobancario.NewService(retornoBancarioRepo, clienteRepo)
	repasseService := repasse.NewService(clienteRepo, calculoRepo, valoresRepo, logger)

	// Handlers
	proprietarioHandler := proprietario.NewHandler(proprietarioRepo)
	clienteHandler := cliente.NewHandler(clienteRepo)
	valoresHandler := valoresvariaveis.NewHandler(valoresService)
	calculoHandler := calculomensal.NewHandler(calculoService, calculoRepo, clienteRepo)
	retornoHandler := retorno.NewHandler(retornoService)
	retornoBancarioHandler := retornobancario.NewHandler(retornoBancarioService)
	repasseHandler := repasse.NewHandler(repasseService)
	healthHandler := health.NewHandler(conexao)

	// Router
	r := mux.NewRouter()

	// Saúde
	r.HandleFunc("/api/health", healthHandler.Verificar).Methods("GET")
	r.HandleFunc("/api/health/db", healthHandler.VerificarBanco).Methods("GET")
	r.HandleFunc("/api/health/complete", healthHandler.VerificarCompleto).Methods("GET")

	// Autenticação
	r.HandleFunc("/api/auth/login", auth.LoginHandler(conexao)).Methods("POST")
	r.Handle("/api/auth/usuarios", auth.MiddlewareAutenticacao(
		auth.RequireAdmin(auth.RegistrarHandler(conexao)))).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	if os.Getenv("AUTH_ENABLED") == "true" {
		api.Use(mux.MiddlewareFunc(auth.MiddlewareAutenticacao))
	}

	// Rotas de proprietários
	api.HandleFunc("/owners", proprietarioHandler.Criar).Methods("POST")
	api.HandleFunc("/owners", proprietarioHandler.Listar).Methods("GET")
	api.HandleFunc("/owners/{id}", proprietarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/owners/{id}", proprietarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/owners/{id}", proprietarioHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/owners/{id}/clients", proprietarioHandler.ListarClientes).Methods("GET")

	// Rotas de clientes (as específicas antes de /{id})
	api.HandleFunc("/clients", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clients", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clients/names", clienteHandler.ListarNomes).Methods("GET")
	api.HandleFunc("/clients/adjustments", clienteHandler.VerificarReajustes).Methods("GET")
	api.HandleFunc("/clients/adjustments/next-3-months", clienteHandler.ReajustesTresMeses).Methods("GET")
	api.HandleFunc("/clients/{id}/next-adjustment", clienteHandler.ProximoReajusteDoCliente).Methods("GET")
	api.HandleFunc("/clients/{id}/deactivate", clienteHandler.Desativar).Methods("PUT")
	api.HandleFunc("/clients/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clients/{id}", clienteHandler.Atualizar).Methods("PUT")

	// Rotas de cálculos mensais
	api.HandleFunc("/monthly-calculations/calculate", calculoHandler.Calcular).Methods("POST")
	api.HandleFunc("/monthly-calculations", calculoHandler.Listar).Methods("GET")
	api.HandleFunc("/monthly-calculations/client/{id}", calculoHandler.ListarPorCliente).Methods("GET")
	api.HandleFunc("/monthly-calculations/owner/{id}", calculoHandler.ListarPorProprietario).Methods("GET")

	// Rotas de valores variáveis mensais
	api.HandleFunc("/monthly-variable-values", valoresHandler.Listar).Methods("GET")
	api.HandleFunc("/monthly-variable-values", valoresHandler.CriarOuAtualizar).Methods("POST")
	api.HandleFunc("/monthly-variable-values/pending", valoresHandler.VerificarPendencias).Methods("GET")
	api.HandleFunc("/monthly-variable-values/client/{id}", valoresHandler.ListarPorCliente).Methods("GET")
	api.HandleFunc("/monthly-variable-values/{id}/{month}/{year}", valoresHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/monthly-variable-values/{id}/{month}/{year}", valoresHandler.Deletar).Methods("DELETE")

	// Rotas de retornos de pagamento
	api.HandleFunc("/retornos/buscar-clientes", retornoHandler.BuscarClientes).Methods("POST")
	api.HandleFunc("/retornos/processar", retornoHandler.Processar).Methods("POST")
	api.HandleFunc("/retornos", retornoHandler.Listar).Methods("GET")
	api.HandleFunc("/retornos/owner/{id}", retornoHandler.ListarPorProprietario).Methods("GET")
	api.HandleFunc("/retornos/{id}", retornoHandler.BuscarPorID).Methods("GET")

	// Rotas de repasses mensais
	api.HandleFunc("/monthly-transfers/owner/{id}", repasseHandler.RelatorioProprietario).Methods("GET")

	// Rotas de retornos bancários
	api.HandleFunc("/bank-returns/client/{id}/{month}/{year}", retornoBancarioHandler.CriarOuAtualizar).Methods("POST")
	api.HandleFunc("/bank-returns/owner/{id}", retornoBancarioHandler.RelatorioProprietario).Methods("GET")
	api.HandleFunc("/bank-returns/month/{month}/{year}", retornoBancarioHandler.RelatorioMensal).Methods("GET")

	// CORS liberado para o front
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	logger.Info("Servidor iniciado", zap.String("porta", porta))
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
