package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/models"
)

// JobRepository provides access to job postings and the eligibility query.
type JobRepository interface {
	GetByID(ctx context.Context, id uint) (models.Job, error)
	ListEligible(ctx context.Context, student models.Student) ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository constructs a job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Preload("Company").First(&job, id).Error; err != nil {
		return models.Job{}, err
	}

	return job, nil
}

// ListEligible returns the jobs the student meets the CGPA, backlog and
// branch criteria for, minus jobs already applied to. Skill requirements are
// relaxed matching: preloaded for display, never a filter. A job with no
// branch rows is open to every branch.
func (r *jobRepository) ListEligible(ctx context.Context, student models.Student) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("skills.name") }).
		Where("min_cgpa <= ?", student.CGPA).
		Where("max_backlogs >= ?", student.ActiveBacklogs).
		Where(`(NOT EXISTS (SELECT 1 FROM job_branches jb WHERE jb.job_id = jobs.id)
			OR EXISTS (SELECT 1 FROM job_branches jb WHERE jb.job_id = jobs.id AND jb.branch_code = ?))`, student.BranchCode).
		Where("NOT EXISTS (SELECT 1 FROM applications a WHERE a.student_id = ? AND a.job_id = jobs.id)", student.ID).
		Order("ctc_lpa DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	return jobs, nil
}
