package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
)

// ErrStudentNotFound indicates the referenced student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// ErrStudentNotApproved indicates the student account has not been approved.
var ErrStudentNotApproved = errors.New("student account is not approved")

// JobService exposes job discovery use cases.
type JobService interface {
	ListEligible(ctx context.Context, studentID uint) ([]dto.EligibleJobResponse, error)
}

type jobService struct {
	jobs         repository.JobRepository
	students     repository.StudentRepository
	applications repository.ApplicationRepository
	logger       zerolog.Logger
}

// NewJobService builds the job service.
func NewJobService(jobs repository.JobRepository, students repository.StudentRepository, applications repository.ApplicationRepository, logger zerolog.Logger) JobService {
	return &jobService{
		jobs:         jobs,
		students:     students,
		applications: applications,
		logger:       logger.With().Str("component", "job_service").Logger(),
	}
}

// ListEligible returns the openings the student may still apply to. A placed
// student (one accepted application) sees an empty list.
func (s *jobService) ListEligible(ctx context.Context, studentID uint) ([]dto.EligibleJobResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if student.Status != models.StudentStatusApproved {
		return nil, ErrStudentNotApproved
	}

	placed, err := s.applications.HasAccepted(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if placed {
		return []dto.EligibleJobResponse{}, nil
	}

	jobs, err := s.jobs.ListEligible(ctx, student)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EligibleJobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, dto.NewEligibleJobResponse(job))
	}

	return responses, nil
}
