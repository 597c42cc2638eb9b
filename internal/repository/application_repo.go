package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushq/placement-api/internal/models"
)

// ErrApplicationNotOffered indicates finalization targeted an application
// whose status is not OFFERED; nothing was written.
var ErrApplicationNotOffered = errors.New("application is not in offered status")

// ErrApplicationStatusChanged indicates the application left the expected
// status between read and write; nothing was written.
var ErrApplicationStatusChanged = errors.New("application status changed concurrently")

// ApplicationRepository provides access to the application workflow state.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uint) (models.Application, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error)
	ListOpen(ctx context.Context) ([]models.Application, error)
	ListOffered(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, from, to models.ApplicationStatus) error
	HasAccepted(ctx context.Context, studentID uint) (bool, error)
	Finalize(ctx context.Context, id uint, offerDate time.Time) (models.Application, error)
	GetOffer(ctx context.Context, applicationID uint) (models.Offer, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository constructs an application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Job").
		Preload("Job.Company").
		First(&app, id).Error
	if err != nil {
		return models.Application{}, err
	}

	return app, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// ListOpen returns every application except accepted ones, newest first.
func (r *applicationRepository) ListOpen(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Job").
		Preload("Job.Company").
		Where("status <> ?", models.ApplicationStatusAccepted).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// ListOffered returns finalization candidates ordered by student then company
// name so the admin view is stable without pagination.
func (r *applicationRepository) ListOffered(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Job").
		Preload("Job.Company").
		Joins("JOIN students ON students.id = applications.student_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("applications.status = ?", models.ApplicationStatusOffered).
		Order("students.name, companies.name").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// UpdateStatus moves an application from one status to another. The expected
// current status is part of the WHERE clause so a write that raced another
// status change hits zero rows instead of clobbering it.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, from, to models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).First(&models.Application{}, id).Error; err != nil {
			return err
		}
		return ErrApplicationStatusChanged
	}

	return nil
}

func (r *applicationRepository) HasAccepted(ctx context.Context, studentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("student_id = ? AND status = ?", studentID, models.ApplicationStatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Finalize atomically accepts an offered application: the status write, the
// offer upsert and the auto-rejection of the student's other open
// applications commit together or not at all. The guard on OFFERED status is
// part of the same UPDATE so a concurrent finalize cannot accept twice.
func (r *applicationRepository) Finalize(ctx context.Context, id uint, offerDate time.Time) (models.Application, error) {
	var app models.Application

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", id, models.ApplicationStatusOffered).
			Update("status", models.ApplicationStatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := tx.First(&models.Application{}, id).Error; err != nil {
				return err
			}
			return ErrApplicationNotOffered
		}

		if err := tx.First(&app, id).Error; err != nil {
			return err
		}

		offer := models.Offer{
			ApplicationID: app.ID,
			OfferDate:     offerDate,
			OfferStatus:   models.OfferStatusAccepted,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"offer_date", "offer_status"}),
		}).Create(&offer).Error
		if err != nil {
			return err
		}

		// One accepted application per student: close out the siblings.
		return tx.Model(&models.Application{}).
			Where("student_id = ? AND id <> ? AND status NOT IN ?",
				app.StudentID, app.ID,
				[]models.ApplicationStatus{models.ApplicationStatusAccepted, models.ApplicationStatusRejected}).
			Update("status", models.ApplicationStatusRejected).Error
	})
	if err != nil {
		return models.Application{}, err
	}

	return app, nil
}

func (r *applicationRepository) GetOffer(ctx context.Context, applicationID uint) (models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		First(&offer).Error
	if err != nil {
		return models.Offer{}, err
	}

	return offer, nil
}
