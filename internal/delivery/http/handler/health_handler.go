package handler

import (
	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	RootMessage   = "SkillPath API is working 🚀"
	HealthMessage = "Healthy ✅"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, dto.MessageResponse{Message: RootMessage})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, dto.MessageResponse{Message: HealthMessage})
}
