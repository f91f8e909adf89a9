package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/api/handler"
	"github.com/expensetracker/expense-system/internal/api/middleware"
	"github.com/expensetracker/expense-system/internal/core/service"
	"github.com/expensetracker/expense-system/internal/infrastructure/config"
	"github.com/expensetracker/expense-system/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("expense"))

	// --- Repositories ---
	accountRepo := postgres.NewAccountRepository(pool, log)
	walletRepo := postgres.NewWalletRepository(pool, log)
	categoryRepo := postgres.NewCategoryRepository(pool, log)
	currencyRepo := postgres.NewCurrencyRepository(pool, log)
	transactionRepo := postgres.NewTransactionRepository(pool, log)
	expenseRepo := postgres.NewStandardExpenseRepository(pool, log)

	// --- Services ---
	hasher := service.NewBcryptHasher()
	tokens := service.NewJWTTokenGenerator(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.AccessTokenTTL())
	authService := service.NewAuthService(accountRepo, hasher, tokens, cfg.JWT.AccessTokenTTL(), cfg.JWT.RefreshTokenTTL(), log)
	accountService := service.NewAccountService(accountRepo, log)
	walletService := service.NewWalletService(walletRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	currencyService := service.NewCurrencyService(currencyRepo, log)
	transactionService := service.NewTransactionService(transactionRepo, log)
	expenseService := service.NewStandardExpenseService(expenseRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, accountService)
	accountHandler := handler.NewAccountHandler(accountService)
	walletHandler := handler.NewWalletHandler(walletService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	expenseHandler := handler.NewStandardExpenseHandler(expenseService)

	authMiddleware := middleware.Auth(middleware.AuthOptions{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Protected API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/accounts", accountHandler.List)
	v1.GET("/accounts/:id", accountHandler.Get)
	v1.PUT("/accounts/:id", accountHandler.Update)
	v1.DELETE("/accounts/:id", accountHandler.Delete)

	v1.GET("/wallets", walletHandler.List)
	v1.POST("/wallets", walletHandler.Create)
	v1.GET("/wallets/:id", walletHandler.Get)
	v1.PUT("/wallets/:id", walletHandler.Update)
	v1.DELETE("/wallets/:id", walletHandler.Delete)
	v1.GET("/wallets/:id/transactions", transactionHandler.ListByWallet)
	v1.GET("/wallets/:id/standard-expenses", expenseHandler.ListByWallet)

	v1.GET("/categories", categoryHandler.List)
	v1.POST("/categories", categoryHandler.Create)
	v1.GET("/categories/:id", categoryHandler.Get)
	v1.PUT("/categories/:id", categoryHandler.Update)
	v1.DELETE("/categories/:id", categoryHandler.Delete)

	v1.GET("/currencies", currencyHandler.List)
	v1.POST("/currencies", currencyHandler.Create)
	v1.GET("/currencies/:id", currencyHandler.Get)
	v1.PUT("/currencies/:id", currencyHandler.Update)
	v1.DELETE("/currencies/:id", currencyHandler.Delete)

	v1.POST("/transactions", transactionHandler.Create)
	v1.GET("/transactions/:id", transactionHandler.Get)
	v1.PUT("/transactions/:id", transactionHandler.Update)
	v1.DELETE("/transactions/:id", transactionHandler.Delete)

	v1.POST("/standard-expenses", expenseHandler.Create)
	v1.GET("/standard-expenses/:id", expenseHandler.Get)
	v1.PUT("/standard-expenses/:id", expenseHandler.Update)
	v1.DELETE("/standard-expenses/:id", expenseHandler.Delete)

	// --- Observability and health probes (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
