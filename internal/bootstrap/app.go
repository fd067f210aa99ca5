package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/GlibAI/GenXL/internal/config"
	"github.com/GlibAI/GenXL/internal/database"
	"github.com/GlibAI/GenXL/internal/handler"
	"github.com/GlibAI/GenXL/internal/logger"
	"github.com/GlibAI/GenXL/pkg/sqlsource"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB // nil unless a query source database is configured
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	var source *sqlsource.Source
	if config.DefaultEnvConfig.DatabaseConfigured() {
		dbConfig := database.Config{
			Host:            config.DefaultEnvConfig.DB_HOST,
			Port:            config.DefaultEnvConfig.DB_PORT,
			User:            config.DefaultEnvConfig.DB_USER,
			Password:        config.DefaultEnvConfig.DB_PASSWORD,
			DBName:          config.DefaultEnvConfig.DB_NAME,
			SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
			MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
			MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
			ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
		}

		db, err := database.NewPostgresDB(ctx, dbConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db
		source = sqlsource.New(db)
		logger.InfoLog(ctx, "Query source database connected")
	}

	renderHandler := handler.NewRenderHandler(source, config.DefaultEnvConfig.MAX_QUERY_ROWS)

	a.RegisterMiddlewares()
	a.RegisterRoutes(renderHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(renderHandler *handler.RenderHandler) {
	a.Echo.POST("/render", renderHandler.RenderDocumentHandler)
	a.Echo.POST("/render/mapping", renderHandler.RenderMappingHandler)
	a.Echo.POST("/prompt", renderHandler.PromptHandler)
	if a.DB != nil {
		a.Echo.POST("/render/query", renderHandler.RenderQueryHandler)
	}
}

func (a *App) Run() error {
	if a.DB != nil {
		defer a.DB.Close()
	}
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
