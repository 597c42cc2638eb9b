package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/service"
	"github.com/campushq/placement-api/internal/utils"
)

// ApplicationHandler wires the application workflow routes.
type ApplicationHandler struct {
	service service.ApplicationService
	logger  zerolog.Logger
}

// NewApplicationHandler constructs the handler.
func NewApplicationHandler(service service.ApplicationService, logger zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger.With().Str("component", "application_handler").Logger(),
	}
}

// Register attaches the application workflow routes, each behind its own
// role guard.
func (h *ApplicationHandler) Register(router fiber.Router, studentGuard fiber.Handler, adminGuard fiber.Handler) {
	router.Post("/applications/apply", studentGuard, h.apply)
	router.Get("/applications/student/:id", studentGuard, h.listByStudent)

	router.Get("/applications/all", adminGuard, h.listOpen)
	router.Get("/applications/pending", adminGuard, h.listOffered)
	router.Put("/applications/update-status", adminGuard, h.updateStatus)
	router.Post("/applications/accept_offer", adminGuard, h.acceptOffer)
}

func (h *ApplicationHandler) apply(c *fiber.Ctx) error {
	var payload dto.ApplyRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	app, err := h.service.Apply(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateApplication):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrJobNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrStudentNotApproved), errors.Is(err, service.ErrStudentAlreadyPlaced):
			return utils.SendError(c, fiber.StatusForbidden, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "student id and job id are required")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "application submitted successfully", app)
}

func (h *ApplicationHandler) listByStudent(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	apps, err := h.service.ListByStudent(c.Context(), studentID)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "applications retrieved", apps)
}

func (h *ApplicationHandler) listOpen(c *fiber.Ctx) error {
	apps, err := h.service.ListOpen(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "applications retrieved", apps)
}

func (h *ApplicationHandler) listOffered(c *fiber.Ctx) error {
	apps, err := h.service.ListOffered(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "offered applications retrieved", apps)
}

func (h *ApplicationHandler) updateStatus(c *fiber.Ctx) error {
	var payload dto.UpdateStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	app, err := h.service.UpdateStatus(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "application not found")
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidTransition):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTransitionConflict):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "application id and status are required")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "application status updated to "+app.Status, app)
}

func (h *ApplicationHandler) acceptOffer(c *fiber.Ctx) error {
	var payload dto.AcceptOfferRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	offer, err := h.service.Finalize(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "application not found")
		case errors.Is(err, service.ErrApplicationNotOffered):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "application id is required")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "offer successfully accepted", offer)
}

func (h *ApplicationHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
