package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/models"
)

// StudentRepository provides access to student records and their skill profile.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (models.Student, error)
	GetByEmail(ctx context.Context, email string) (models.Student, error)
	ListByStatus(ctx context.Context, status models.StudentStatus) ([]models.Student, error)
	UpdateStatus(ctx context.Context, id uint, status models.StudentStatus) error
	ListSkills(ctx context.Context, studentID uint) ([]models.Skill, error)
	ReplaceSkills(ctx context.Context, studentID uint, skillIDs []uint) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) ListByStatus(ctx context.Context, status models.StudentStatus) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("name").
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) UpdateStatus(ctx context.Context, id uint, status models.StudentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *studentRepository) ListSkills(ctx context.Context, studentID uint) ([]models.Skill, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("skills.name") }).
		First(&student, studentID).Error
	if err != nil {
		return nil, err
	}

	return student.Skills, nil
}

// ReplaceSkills swaps the entire skill profile inside one transaction so a
// partial write never survives a failure.
func (r *studentRepository) ReplaceSkills(ctx context.Context, studentID uint, skillIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, studentID).Error; err != nil {
			return err
		}

		skills := make([]models.Skill, 0, len(skillIDs))
		if len(skillIDs) > 0 {
			if err := tx.Where("id IN ?", skillIDs).Find(&skills).Error; err != nil {
				return err
			}
		}

		return tx.Model(&student).Association("Skills").Replace(skills)
	})
}
