package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/compass-edu/compass-api/internal/service"
	"github.com/compass-edu/compass-api/internal/utils"
)

// CareerHandler wires career catalog HTTP routes.
type CareerHandler struct {
	service service.CareerCatalogService
	logger  zerolog.Logger
}

// NewCareerHandler constructs the handler.
func NewCareerHandler(service service.CareerCatalogService, logger zerolog.Logger) *CareerHandler {
	return &CareerHandler{
		service: service,
		logger:  logger.With().Str("component", "career_handler").Logger(),
	}
}

// Register attaches career endpoints to the router group.
func (h *CareerHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *CareerHandler) list(c *fiber.Ctx) error {
	listing, err := h.service.List(c.Context(), queryValue(c, "audience"), queryValue(c, "industry"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "careers retrieved", listing)
}
