package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/service"
	"github.com/campushq/placement-api/internal/utils"
)

// AuthHandler wires registration and login HTTP routes.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches auth endpoints to the router group.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/register", h.register)
	router.Post("/login/student", h.loginStudent)
	router.Post("/login/admin", h.loginAdmin)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Register(c.Context(), payload); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "all required fields must be filled")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated,
		"registration successful, your account is pending admin approval", nil)
}

func (h *AuthHandler) loginStudent(c *fiber.Ctx) error {
	return h.login(c, h.service.LoginStudent)
}

func (h *AuthHandler) loginAdmin(c *fiber.Ctx) error {
	return h.login(c, h.service.LoginAdmin)
}

func (h *AuthHandler) login(c *fiber.Ctx, authenticate func(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := authenticate(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrAccountPending), errors.Is(err, service.ErrAccountRejected):
			return utils.SendError(c, fiber.StatusForbidden, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "email and password are required")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "login successful", response)
}

func (h *AuthHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
