package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-api/internal/service"
	"github.com/campushq/placement-api/internal/utils"
)

// LookupHandler serves the public reference-data endpoints.
type LookupHandler struct {
	service service.LookupService
	logger  zerolog.Logger
}

// NewLookupHandler constructs the handler.
func NewLookupHandler(service service.LookupService, logger zerolog.Logger) *LookupHandler {
	return &LookupHandler{
		service: service,
		logger:  logger.With().Str("component", "lookup_handler").Logger(),
	}
}

// Register attaches lookup endpoints to the router group.
func (h *LookupHandler) Register(router fiber.Router) {
	router.Get("/branches", h.listBranches)
	router.Get("/skills", h.listSkills)
}

func (h *LookupHandler) listBranches(c *fiber.Ctx) error {
	branches, err := h.service.ListBranches(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "branches retrieved", branches)
}

func (h *LookupHandler) listSkills(c *fiber.Ctx) error {
	skills, err := h.service.ListSkills(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "skills retrieved", skills)
}

func (h *LookupHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
