package handler

import (
	"errors"

	"jobpath/internal/delivery/http/dto"
	"jobpath/internal/delivery/http/middleware"
	"jobpath/internal/pkg/response"
	"jobpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/users")
	grp.Get("/:id/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user id is required", nil, nil)
	}

	items, err := h.uc.Recommend(c.Context(), userID)
	if err != nil {
		return mapRecommendationError(err)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendationResponse{
			JobID:    it.JobID,
			Position: it.Position,
			Score:    it.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRecommendationError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
