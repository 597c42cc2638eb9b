package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-api/internal/service"
	"github.com/campushq/placement-api/internal/utils"
)

// AdminHandler wires the approval gate and reporting routes.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches admin endpoints behind the provided role guard.
func (h *AdminHandler) Register(router fiber.Router, guard fiber.Handler) {
	router.Get("/students", guard, h.listApproved)
	router.Get("/admin/stats", guard, h.stats)
	router.Get("/admin/pending-students", guard, h.listPending)
	router.Put("/admin/approve-student/:id", guard, h.approveStudent)
	router.Put("/admin/reject-student/:id", guard, h.rejectStudent)
}

func (h *AdminHandler) listApproved(c *fiber.Ctx) error {
	students, err := h.service.ListApprovedStudents(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *AdminHandler) listPending(c *fiber.Ctx) error {
	students, err := h.service.ListPendingStudents(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "pending students retrieved", students)
}

func (h *AdminHandler) approveStudent(c *fiber.Ctx) error {
	return h.setStatus(c, h.service.ApproveStudent, "student approved")
}

func (h *AdminHandler) rejectStudent(c *fiber.Ctx) error {
	return h.setStatus(c, h.service.RejectStudent, "student rejected")
}

func (h *AdminHandler) setStatus(c *fiber.Ctx, update func(ctx context.Context, id uint) error, message string) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := update(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, message, fiber.Map{"id": id})
}

func (h *AdminHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.BranchPlacementStats(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "placement stats retrieved", stats)
}

func (h *AdminHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
