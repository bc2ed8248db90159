package routes

import (
	"skillpath/internal/delivery/http/handler"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health         *handler.HealthHandler
	docs           *handler.DocsHandler
	recommendation *handler.RecommendationHandler
}

func NewRegistry(recommendations usecase.RecommendationUsecase) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(),
		docs:           handler.NewDocsHandler(),
		recommendation: handler.NewRecommendationHandler(recommendations),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.docs.RegisterRoutes(app)
	r.recommendation.RegisterRoutes(app)
}
