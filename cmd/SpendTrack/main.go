package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/umcode/SpendTrack/db"
	"github.com/umcode/SpendTrack/internal/auth"
	"github.com/umcode/SpendTrack/internal/cache"
	"github.com/umcode/SpendTrack/internal/finance/application"
	"github.com/umcode/SpendTrack/internal/finance/domain"
	"github.com/umcode/SpendTrack/internal/finance/infrastructure"
	"github.com/umcode/SpendTrack/internal/finance/interfaces"
	"github.com/umcode/SpendTrack/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"message": message,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()
	protected := auth.BearerTokenMiddleware(s.authService)

	// Public routes
	router.Handle("POST /auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	router.Handle("POST /auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	router.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	// Session routes
	router.Handle("POST /auth/logout", protected(http.HandlerFunc(s.authHandler.HandleLogout)))
	router.Handle("GET /auth/me", protected(http.HandlerFunc(s.authHandler.HandleMe)))

	// Category API
	router.Handle("GET /categories", protected(http.HandlerFunc(s.categoryHandler.ListCategories)))
	router.Handle("POST /categories", protected(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	router.Handle("GET /categories/{id}", protected(http.HandlerFunc(s.categoryHandler.GetCategory)))
	router.Handle("PUT /categories/{id}", protected(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	router.Handle("DELETE /categories/{id}", protected(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// Transaction API
	router.Handle("GET /transactions", protected(http.HandlerFunc(s.transactionHandler.ListTransactions)))
	router.Handle("POST /transactions", protected(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	router.Handle("GET /transactions/filter", protected(http.HandlerFunc(s.transactionHandler.FilterTransactions)))
	router.Handle("GET /transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	router.Handle("PUT /transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	router.Handle("DELETE /transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// Summary API
	router.Handle("GET /summary/monthly", protected(http.HandlerFunc(s.transactionHandler.GetMonthlySummary)))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	tokenRepo := auth.NewTokenRepository(dbService.DB)
	authService := auth.NewAuthService(tokenRepo, userService)
	authHandler := auth.NewHandler(authService)

	summaryCache := cache.NewTTLCache[domain.MonthlySummary](application.SummaryCacheTTL)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	summaryCache.StartCleanup(time.Minute, stopCleanup)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	summaryService := application.NewSummaryService(transactionRepo, summaryCache)
	transactionService := application.NewTransactionService(transactionRepo, categoryService, summaryService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, summaryService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, categoryHandler, transactionHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
