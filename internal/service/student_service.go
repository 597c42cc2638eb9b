package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/repository"
)

// StudentService covers the student's own profile use cases.
type StudentService interface {
	ListSkills(ctx context.Context, studentID uint) ([]dto.SkillResponse, error)
	ReplaceSkills(ctx context.Context, studentID uint, payload dto.UpdateSkillsRequest) error
}

type studentService struct {
	students repository.StudentRepository
	logger   zerolog.Logger
}

// NewStudentService builds the student profile service.
func NewStudentService(students repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		students: students,
		logger:   logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) ListSkills(ctx context.Context, studentID uint) ([]dto.SkillResponse, error) {
	skills, err := s.students.ListSkills(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return dto.NewSkillResponseSlice(skills), nil
}

func (s *studentService) ReplaceSkills(ctx context.Context, studentID uint, payload dto.UpdateSkillsRequest) error {
	if err := s.students.ReplaceSkills(ctx, studentID, payload.Skills); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.logger.Info().Uint("student_id", studentID).Int("skills", len(payload.Skills)).Msg("skill profile replaced")

	return nil
}
