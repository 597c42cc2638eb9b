package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
)

// Application workflow errors mapped to HTTP statuses at the handler boundary.
var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrDuplicateApplication  = errors.New("you have already applied for this job")
	ErrJobNotFound           = errors.New("job not found")
	ErrStudentAlreadyPlaced  = errors.New("student already holds an accepted offer")
	ErrInvalidStatus         = errors.New("unknown application status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrTransitionConflict    = errors.New("application status changed, please retry")
	ErrApplicationNotOffered = errors.New("application is not in offered status")
)

// ApplicationService orchestrates the application/offer status workflow.
type ApplicationService interface {
	Apply(ctx context.Context, payload dto.ApplyRequest) (dto.StudentApplicationResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.StudentApplicationResponse, error)
	ListOpen(ctx context.Context) ([]dto.ApplicationOverviewResponse, error)
	ListOffered(ctx context.Context) ([]dto.ApplicationOverviewResponse, error)
	UpdateStatus(ctx context.Context, payload dto.UpdateStatusRequest) (dto.ApplicationOverviewResponse, error)
	Finalize(ctx context.Context, payload dto.AcceptOfferRequest) (dto.FinalizedOfferResponse, error)
}

type applicationService struct {
	applications repository.ApplicationRepository
	students     repository.StudentRepository
	jobs         repository.JobRepository
	validator    *validator.Validate
	logger       zerolog.Logger
	now          func() time.Time
}

// NewApplicationService builds the application workflow service.
func NewApplicationService(applications repository.ApplicationRepository, students repository.StudentRepository, jobs repository.JobRepository, validate *validator.Validate, logger zerolog.Logger) ApplicationService {
	return &applicationService{
		applications: applications,
		students:     students,
		jobs:         jobs,
		validator:    validate,
		logger:       logger.With().Str("component", "application_service").Logger(),
		now:          time.Now,
	}
}

// Apply inserts one APPLIED application or nothing. Only approved, unplaced
// students may apply; a second application for the same job is rejected by
// the unique (student, job) index.
func (s *applicationService) Apply(ctx context.Context, payload dto.ApplyRequest) (dto.StudentApplicationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentApplicationResponse{}, err
	}

	student, err := s.students.GetByID(ctx, payload.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentApplicationResponse{}, ErrStudentNotFound
		}
		return dto.StudentApplicationResponse{}, err
	}

	if student.Status != models.StudentStatusApproved {
		return dto.StudentApplicationResponse{}, ErrStudentNotApproved
	}

	placed, err := s.applications.HasAccepted(ctx, student.ID)
	if err != nil {
		return dto.StudentApplicationResponse{}, err
	}
	if placed {
		return dto.StudentApplicationResponse{}, ErrStudentAlreadyPlaced
	}

	job, err := s.jobs.GetByID(ctx, payload.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentApplicationResponse{}, ErrJobNotFound
		}
		return dto.StudentApplicationResponse{}, err
	}

	app := models.Application{
		StudentID: student.ID,
		JobID:     job.ID,
		Status:    models.ApplicationStatusApplied,
	}

	if err := s.applications.Create(ctx, &app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.StudentApplicationResponse{}, ErrDuplicateApplication
		}
		return dto.StudentApplicationResponse{}, err
	}

	s.logger.Info().
		Uint("application_id", app.ID).
		Uint("student_id", student.ID).
		Uint("job_id", job.ID).
		Msg("application submitted")

	app.Job = job
	return dto.NewStudentApplicationResponse(app), nil
}

func (s *applicationService) ListByStudent(ctx context.Context, studentID uint) ([]dto.StudentApplicationResponse, error) {
	apps, err := s.applications.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, dto.NewStudentApplicationResponse(app))
	}

	return responses, nil
}

func (s *applicationService) ListOpen(ctx context.Context) ([]dto.ApplicationOverviewResponse, error) {
	apps, err := s.applications.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	return newOverviewSlice(apps), nil
}

func (s *applicationService) ListOffered(ctx context.Context) ([]dto.ApplicationOverviewResponse, error) {
	apps, err := s.applications.ListOffered(ctx)
	if err != nil {
		return nil, err
	}

	return newOverviewSlice(apps), nil
}

// UpdateStatus validates the requested transition against the lifecycle
// table before writing. ACCEPTED is never reachable here; that is reserved
// for Finalize.
func (s *applicationService) UpdateStatus(ctx context.Context, payload dto.UpdateStatusRequest) (dto.ApplicationOverviewResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ApplicationOverviewResponse{}, err
	}

	next, ok := models.ParseApplicationStatus(payload.Status)
	if !ok {
		return dto.ApplicationOverviewResponse{}, ErrInvalidStatus
	}

	app, err := s.applications.GetByID(ctx, payload.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationOverviewResponse{}, ErrApplicationNotFound
		}
		return dto.ApplicationOverviewResponse{}, err
	}

	if !models.CanTransition(app.Status, next) {
		return dto.ApplicationOverviewResponse{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, app.Status, next)
	}

	// The write re-checks the status it was validated against; a concurrent
	// change (a finalize in particular) makes it a no-op conflict instead of
	// overwriting the newer state.
	if err := s.applications.UpdateStatus(ctx, app.ID, app.Status, next); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return dto.ApplicationOverviewResponse{}, ErrApplicationNotFound
		case errors.Is(err, repository.ErrApplicationStatusChanged):
			return dto.ApplicationOverviewResponse{}, ErrTransitionConflict
		default:
			return dto.ApplicationOverviewResponse{}, err
		}
	}

	s.logger.Info().
		Uint("application_id", app.ID).
		Str("from", string(app.Status)).
		Str("to", string(next)).
		Msg("application status updated")

	app.Status = next
	return dto.NewApplicationOverviewResponse(app), nil
}

// Finalize accepts an offered application. The repository runs the status
// write, offer upsert and sibling auto-rejection in one transaction; any
// failure leaves no partial state.
func (s *applicationService) Finalize(ctx context.Context, payload dto.AcceptOfferRequest) (dto.FinalizedOfferResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FinalizedOfferResponse{}, err
	}

	offerDate := s.now().UTC().Truncate(24 * time.Hour)

	app, err := s.applications.Finalize(ctx, payload.ApplicationID, offerDate)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return dto.FinalizedOfferResponse{}, ErrApplicationNotFound
		case errors.Is(err, repository.ErrApplicationNotOffered):
			return dto.FinalizedOfferResponse{}, ErrApplicationNotOffered
		default:
			return dto.FinalizedOfferResponse{}, err
		}
	}

	offer, err := s.applications.GetOffer(ctx, app.ID)
	if err != nil {
		return dto.FinalizedOfferResponse{}, err
	}

	s.logger.Info().
		Uint("application_id", app.ID).
		Uint("student_id", app.StudentID).
		Msg("offer finalized")

	return dto.FinalizedOfferResponse{
		ApplicationID: app.ID,
		Status:        string(app.Status),
		OfferDate:     offer.OfferDate,
	}, nil
}

func newOverviewSlice(apps []models.Application) []dto.ApplicationOverviewResponse {
	responses := make([]dto.ApplicationOverviewResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, dto.NewApplicationOverviewResponse(app))
	}
	return responses
}
