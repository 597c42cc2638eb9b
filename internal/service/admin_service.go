package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
)

const statsCacheKey = "stats:branch_placement"

// AdminService covers the approval gate and placement reporting.
type AdminService interface {
	ListApprovedStudents(ctx context.Context) ([]dto.StudentSummaryResponse, error)
	ListPendingStudents(ctx context.Context) ([]dto.StudentSummaryResponse, error)
	ApproveStudent(ctx context.Context, id uint) error
	RejectStudent(ctx context.Context, id uint) error
	BranchPlacementStats(ctx context.Context) ([]dto.BranchPlacementStatsResponse, error)
}

type adminService struct {
	students repository.StudentRepository
	stats    repository.StatsRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewAdminService builds the admin service. The cache client may be nil, in
// which case the stats aggregation runs on every request.
func NewAdminService(students repository.StudentRepository, stats repository.StatsRepository, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) AdminService {
	return &adminService{
		students: students,
		stats:    stats,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) ListApprovedStudents(ctx context.Context) ([]dto.StudentSummaryResponse, error) {
	return s.listByStatus(ctx, models.StudentStatusApproved, false)
}

func (s *adminService) ListPendingStudents(ctx context.Context) ([]dto.StudentSummaryResponse, error) {
	return s.listByStatus(ctx, models.StudentStatusPending, true)
}

func (s *adminService) listByStatus(ctx context.Context, status models.StudentStatus, includeEmail bool) ([]dto.StudentSummaryResponse, error) {
	students, err := s.students.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentSummaryResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentSummaryResponse(student, includeEmail))
	}

	return responses, nil
}

func (s *adminService) ApproveStudent(ctx context.Context, id uint) error {
	return s.setStudentStatus(ctx, id, models.StudentStatusApproved)
}

func (s *adminService) RejectStudent(ctx context.Context, id uint) error {
	return s.setStudentStatus(ctx, id, models.StudentStatusRejected)
}

func (s *adminService) setStudentStatus(ctx context.Context, id uint, status models.StudentStatus) error {
	if err := s.students.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.logger.Info().Uint("student_id", id).Str("status", string(status)).Msg("student status updated")

	return nil
}

// BranchPlacementStats serves the per-branch placement report, cached for the
// configured TTL because the aggregation touches every core table.
func (s *adminService) BranchPlacementStats(ctx context.Context) ([]dto.BranchPlacementStatsResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var responses []dto.BranchPlacementStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &responses); unmarshalErr == nil {
				s.logger.Debug().Msg("placement stats cache hit")
				return responses, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read placement stats cache")
		}
	}

	rows, err := s.stats.BranchPlacement(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BranchPlacementStatsResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.BranchPlacementStatsResponse{
			BranchName:     row.BranchName,
			TotalStudents:  row.TotalStudents,
			PlacedStudents: row.PlacedStudents,
			HighestPackage: formatPackage(row.HighestPackage),
			AveragePackage: formatPackage(row.AveragePackage),
		})
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(responses); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to write placement stats cache")
			}
		}
	}

	return responses, nil
}

func formatPackage(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *value)
}
