package handler

import (
	"jobpath/internal/delivery/http/dto"
	"jobpath/internal/delivery/http/middleware"
	"jobpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// PredictHandler serves the legacy model endpoint consumed by the existing
// frontend. Unlike the v1 routes it answers with bare parallel arrays, not
// the semantic envelope.
type PredictHandler struct {
	uc usecase.RecommendationUsecase
}

func NewPredictHandler(uc usecase.RecommendationUsecase) *PredictHandler {
	return &PredictHandler{uc: uc}
}

func (h *PredictHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/predict", h.Predict)
}

func (h *PredictHandler) Predict(c fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	items, err := h.uc.Recommend(c.Context(), req.UserID)
	if err != nil {
		return mapRecommendationError(err)
	}

	resp := dto.PredictResponse{
		ID:         make([]string, 0, len(items)),
		Position:   make([]string, 0, len(items)),
		Similarity: make([]float64, 0, len(items)),
	}
	for _, it := range items {
		resp.ID = append(resp.ID, it.JobID)
		resp.Position = append(resp.Position, it.Position)
		resp.Similarity = append(resp.Similarity, it.Score)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
