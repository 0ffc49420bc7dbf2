package routes

import (
	"jobpath/internal/delivery/http/handler"
	"jobpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	predict *handler.PredictHandler
	rec     *handler.RecommendationHandler
}

func NewRegistry(recUC usecase.RecommendationUsecase) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(),
		predict: handler.NewPredictHandler(recUC),
		rec:     handler.NewRecommendationHandler(recUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	// Legacy model endpoint stays at the root for frontend compatibility.
	r.predict.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.rec.RegisterRoutes(v1)
}
