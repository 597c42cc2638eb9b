package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
)

// Authentication errors mapped to HTTP statuses at the handler boundary.
var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountPending     = errors.New("registration is still pending approval")
	ErrAccountRejected    = errors.New("registration has been rejected")
)

// RoleStudent and RoleAdmin are the role claims carried in issued tokens.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// BootstrapAdmin is an optional config-provisioned admin account for first
// boot, before any placement officer row exists. Disabled when empty.
type BootstrapAdmin struct {
	Email    string
	Password string
}

// Enabled reports whether the bootstrap account may be used for login.
func (b BootstrapAdmin) Enabled() bool {
	return b.Email != "" && b.Password != ""
}

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) error
	LoginStudent(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
}

type authService struct {
	students  repository.StudentRepository
	officers  repository.OfficerRepository
	validator *validator.Validate
	secret    string
	tokenTTL  time.Duration
	bootstrap BootstrapAdmin
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds the authentication service.
func NewAuthService(students repository.StudentRepository, officers repository.OfficerRepository, validate *validator.Validate, secret string, tokenTTL time.Duration, bootstrap BootstrapAdmin, logger zerolog.Logger) AuthService {
	return &authService{
		students:  students,
		officers:  officers,
		validator: validate,
		secret:    secret,
		tokenTTL:  tokenTTL,
		bootstrap: bootstrap,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	if _, err := s.students.GetByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	student := models.Student{
		Name:           strings.TrimSpace(payload.Name),
		Email:          email,
		Phone:          strings.TrimSpace(payload.Phone),
		BranchCode:     strings.TrimSpace(payload.BranchCode),
		BatchYear:      payload.BatchYear,
		CGPA:           payload.CGPA,
		ActiveBacklogs: payload.ActiveBacklogs,
		PasswordHash:   string(hash),
		Status:         models.StudentStatusPending,
	}

	if err := s.students.Create(ctx, &student); err != nil {
		// The unique index still wins a race the pre-check missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}

	s.logger.Info().Uint("student_id", student.ID).Msg("student registered, pending approval")

	return nil
}

func (s *authService) LoginStudent(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	student, err := s.students.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(payload.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(payload.Password)) != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	switch student.Status {
	case models.StudentStatusPending:
		return dto.LoginResponse{}, ErrAccountPending
	case models.StudentStatusRejected:
		return dto.LoginResponse{}, ErrAccountRejected
	}

	token, err := s.signToken(student.ID, RoleStudent)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		User: dto.AuthUser{
			ID:    student.ID,
			Name:  student.Name,
			Email: student.Email,
			Role:  RoleStudent,
		},
		Token: token,
	}, nil
}

func (s *authService) LoginAdmin(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	if s.bootstrap.Enabled() && email == strings.ToLower(s.bootstrap.Email) && payload.Password == s.bootstrap.Password {
		token, err := s.signToken(0, RoleAdmin)
		if err != nil {
			return dto.LoginResponse{}, err
		}

		s.logger.Warn().Str("email", email).Msg("bootstrap admin login used")

		return dto.LoginResponse{
			User:  dto.AuthUser{Name: "Bootstrap Admin", Email: email, Role: RoleAdmin},
			Token: token,
		}, nil
	}

	officer, err := s.officers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(officer.PasswordHash), []byte(payload.Password)) != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.signToken(officer.ID, RoleAdmin)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		User: dto.AuthUser{
			ID:    officer.ID,
			Name:  officer.Name,
			Email: officer.Email,
			Role:  RoleAdmin,
		},
		Token: token,
	}, nil
}

func (s *authService) signToken(id uint, role string) (string, error) {
	issuedAt := s.now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", id),
		"role": role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}
