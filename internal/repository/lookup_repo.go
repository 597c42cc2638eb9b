package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/models"
)

// LookupRepository serves the read-only reference data used by forms.
type LookupRepository interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
}

type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository constructs a lookup repository.
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	if err := r.db.WithContext(ctx).Order("name").Find(&branches).Error; err != nil {
		return nil, err
	}

	return branches, nil
}

func (r *lookupRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).Order("name").Find(&skills).Error; err != nil {
		return nil, err
	}

	return skills, nil
}
