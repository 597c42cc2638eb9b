package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/models"
)

// OfficerRepository provides access to placement-officer accounts.
type OfficerRepository interface {
	GetByEmail(ctx context.Context, email string) (models.PlacementOfficer, error)
}

type officerRepository struct {
	db *gorm.DB
}

// NewOfficerRepository constructs an officer repository.
func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &officerRepository{db: db}
}

func (r *officerRepository) GetByEmail(ctx context.Context, email string) (models.PlacementOfficer, error) {
	var officer models.PlacementOfficer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&officer).Error; err != nil {
		return models.PlacementOfficer{}, err
	}

	return officer, nil
}
