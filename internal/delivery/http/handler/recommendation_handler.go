package handler

import (
	"errors"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/domain/career"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc       usecase.RecommendationUsecase
	validate *validator.Validate
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, validate: dto.NewValidator()}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := bindRecommendRequest(c, &req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", dto.ValidationDetails(err), err)
	}

	res, err := h.uc.Recommend(c.Context(), req.Query())
	if err != nil {
		return mapRecommendationError(err)
	}

	if !res.Matched() {
		return response.JSON(c, fiber.StatusOK, dto.MessageResponse{Message: dto.NoMatchMessage})
	}
	return response.JSON(c, fiber.StatusOK, dto.NewRecommendationResponse(*res.Career))
}

// bindRecommendRequest decodes the body by its Content-Type and treats a
// request without one as JSON.
func bindRecommendRequest(c fiber.Ctx, req *dto.RecommendRequest) error {
	if len(c.Request().Header.ContentType()) == 0 {
		return c.Bind().JSON(req)
	}
	return c.Bind().Body(req)
}

func mapRecommendationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
	case errors.Is(err, career.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Career catalog unavailable", nil, err)
	case errors.Is(err, career.ErrInvalidCatalogEntry):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Career catalog invalid", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
