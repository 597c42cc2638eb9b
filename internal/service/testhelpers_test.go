package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Branch{}, &models.Skill{}, &models.Company{}, &models.Student{},
		&models.Job{}, &models.Application{}, &models.Offer{}, &models.PlacementOfficer{},
	))

	return db
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func seedApprovedStudent(t *testing.T, db *gorm.DB, email string, cgpa float64) models.Student {
	t.Helper()

	student := models.Student{
		Name:         "Student " + email,
		Email:        email,
		BranchCode:   "CSE",
		BatchYear:    2026,
		CGPA:         cgpa,
		PasswordHash: "x",
		Status:       models.StudentStatusApproved,
	}
	require.NoError(t, db.Create(&student).Error)

	return student
}

func seedJob(t *testing.T, db *gorm.DB, company string, title string, minCGPA float64) models.Job {
	t.Helper()

	job := models.Job{
		Company: models.Company{Name: company},
		Title:   title,
		CTCLPA:  12,
		MinCGPA: minCGPA,
	}
	require.NoError(t, db.Create(&job).Error)

	return job
}
