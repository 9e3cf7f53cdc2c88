package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skindrop/internal/auth"
	"skindrop/internal/config"
	"skindrop/internal/handlers"
	"skindrop/internal/services"
	"skindrop/internal/storage"
)

// App структура для управления приложением и его зависимостями.
type App struct {
	cfg   *config.Config
	store *storage.Store
	echo  *echo.Echo

	// Handlers
	userHandler       *handlers.UserHandler
	caseHandler       *handlers.CaseHandler
	withdrawalHandler *handlers.WithdrawalHandler
	adminHandler      *handlers.AdminHandler
}

// NewApp создаёт и инициализирует новое приложение.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		cfg: cfg,
	}

	if err := app.initStorage(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.initDependencies()
	app.initServer()

	return app, nil
}

// initStorage загружает снапшот хранилища и наполняет пустой каталог
// стартовыми кейсами.
func (app *App) initStorage(ctx context.Context) error {
	store, err := storage.New(app.cfg.StorePath)
	if err != nil {
		return fmt.Errorf("unable to load store snapshot: %w", err)
	}

	if err := store.SeedDefaultCases(ctx); err != nil {
		return fmt.Errorf("unable to seed default cases: %w", err)
	}

	app.store = store
	log.Printf("Storage ready, snapshot at %s", app.cfg.StorePath)

	return nil
}

// initDependencies инициализирует все зависимости приложения (services, handlers).
func (app *App) initDependencies() {
	// Service layer
	userService := services.NewUserService(app.store, app.cfg.JWTSecret, app.cfg.TokenExpiration)
	caseService := services.NewCaseService(app.store)
	openingService := services.NewOpeningService(app.store, nil)
	withdrawalService := services.NewWithdrawalService(app.store)
	adminService := services.NewAdminService(app.store)

	// Handler layer
	app.userHandler = handlers.NewUserHandler(userService)
	app.caseHandler = handlers.NewCaseHandler(caseService, openingService)
	app.withdrawalHandler = handlers.NewWithdrawalHandler(withdrawalService)
	app.adminHandler = handlers.NewAdminHandler(adminService, caseService, userService, withdrawalService)
}

// initServer инициализирует HTTP-сервер и настраивает маршруты.
func (app *App) initServer() {
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// Публичные маршруты
	e.POST("/api/auth/telegram", app.userHandler.Auth)
	e.GET("/api/cases", app.caseHandler.List)
	e.GET("/api/users/:externalId", app.userHandler.Profile)
	e.POST("/api/topup", app.userHandler.TopUp)
	e.POST("/api/open-case", app.caseHandler.Open)
	e.POST("/api/withdraw", app.withdrawalHandler.Request)

	// Админские маршруты (требуют токен с признаком администратора)
	admin := e.Group("/api/admin")
	admin.Use(auth.JWTMiddleware(app.cfg.JWTSecret), auth.AdminOnly)
	admin.GET("/overview", app.adminHandler.Overview)
	admin.POST("/cases", app.adminHandler.CreateCase)
	admin.POST("/balance", app.adminHandler.AdjustBalance)
	admin.POST("/withdrawals/:id/status", app.adminHandler.SetWithdrawalStatus)

	app.echo = e
}

// Start запускает приложение.
func (app *App) Start(ctx context.Context) error {
	log.Printf("Starting server on %s", app.cfg.RunAddress)
	if err := app.echo.Start(app.cfg.RunAddress); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// Shutdown корректно завершает работу приложения.
func (app *App) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := app.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Println("Server gracefully stopped")
	return nil
}
