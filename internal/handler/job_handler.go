package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-api/internal/service"
	"github.com/campushq/placement-api/internal/utils"
)

// JobHandler wires the job discovery routes.
type JobHandler struct {
	service service.JobService
	logger  zerolog.Logger
}

// NewJobHandler constructs the handler.
func NewJobHandler(service service.JobService, logger zerolog.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		logger:  logger.With().Str("component", "job_handler").Logger(),
	}
}

// Register attaches job endpoints behind the provided role guard.
func (h *JobHandler) Register(router fiber.Router, guard fiber.Handler) {
	router.Get("/jobs/eligible/:student_id", guard, h.listEligible)
}

func (h *JobHandler) listEligible(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	jobs, err := h.service.ListEligible(c.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		case errors.Is(err, service.ErrStudentNotApproved):
			return utils.SendError(c, fiber.StatusForbidden, "student account is not approved")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "eligible jobs retrieved", jobs)
}

func (h *JobHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
