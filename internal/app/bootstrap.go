package app

import (
	"fmt"
	"strings"
	"time"

	"skillpath/internal/config"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/delivery/http/routes"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger, recommendations usecase.RecommendationUsecase) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(recommendations).Register(f)
	registerFallback(f)

	return &App{Fiber: f, Logger: logger}
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// releases every resource the container opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, c.Logger, c.Recommendations)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewCORS())
}

func registerFallback(app *fiber.App) {
	app.Use(func(c fiber.Ctx) error {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, nil)
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
