package service

import (
	"context"
	"io"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
)

func newAdminService(db *gorm.DB, cache *redis.Client) AdminService {
	return NewAdminService(
		repository.NewStudentRepository(db),
		repository.NewStatsRepository(db),
		cache, time.Minute, zerolog.New(io.Discard),
	)
}

func TestApproveStudentFlipsPendingToApproved(t *testing.T) {
	db := setupDB(t)
	svc := newAdminService(db, nil)

	student := models.Student{
		Name: "Pending", Email: "flip@uni.edu", BranchCode: "CSE",
		BatchYear: 2026, CGPA: 8, PasswordHash: "x", Status: models.StudentStatusPending,
	}
	require.NoError(t, db.Create(&student).Error)

	require.NoError(t, svc.ApproveStudent(context.Background(), student.ID))

	var persisted models.Student
	require.NoError(t, db.First(&persisted, student.ID).Error)
	require.Equal(t, models.StudentStatusApproved, persisted.Status)
}

func TestApproveStudentUnknownIDReturnsNotFound(t *testing.T) {
	db := setupDB(t)
	svc := newAdminService(db, nil)

	require.ErrorIs(t, svc.ApproveStudent(context.Background(), 4242), ErrStudentNotFound)
	require.ErrorIs(t, svc.RejectStudent(context.Background(), 4242), ErrStudentNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestRejectStudentMarksAccountRejected(t *testing.T) {
	db := setupDB(t)
	svc := newAdminService(db, nil)

	student := models.Student{
		Name: "Unlucky", Email: "reject@uni.edu", BranchCode: "CSE",
		BatchYear: 2026, CGPA: 5, PasswordHash: "x", Status: models.StudentStatusPending,
	}
	require.NoError(t, db.Create(&student).Error)

	require.NoError(t, svc.RejectStudent(context.Background(), student.ID))

	var persisted models.Student
	require.NoError(t, db.First(&persisted, student.ID).Error)
	require.Equal(t, models.StudentStatusRejected, persisted.Status)
}

func TestListPendingStudentsOrderedByName(t *testing.T) {
	db := setupDB(t)
	svc := newAdminService(db, nil)

	for _, name := range []string{"Zara", "Amit"} {
		require.NoError(t, db.Create(&models.Student{
			Name: name, Email: name + "@uni.edu", BranchCode: "CSE",
			BatchYear: 2026, CGPA: 8, PasswordHash: "x", Status: models.StudentStatusPending,
		}).Error)
	}
	seedApprovedStudent(t, db, "approved@uni.edu", 8)

	pending, err := svc.ListPendingStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, "Amit", pending[0].Name)
	require.Equal(t, "Zara", pending[1].Name)
	require.NotEmpty(t, pending[0].Email)

	approved, err := svc.ListApprovedStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.Empty(t, approved[0].Email)
}

func TestBranchPlacementStatsAggregatesAcceptedOffers(t *testing.T) {
	db := setupDB(t)
	svc := newAdminService(db, nil)

	require.NoError(t, db.Create(&models.Branch{Code: "CSE", Name: "Computer Science"}).Error)
	require.NoError(t, db.Create(&models.Branch{Code: "ME", Name: "Mechanical"}).Error)

	placed := seedApprovedStudent(t, db, "placed@uni.edu", 8.5)
	seedApprovedStudent(t, db, "looking@uni.edu", 7.5)

	job := models.Job{Company: models.Company{Name: "Acme"}, Title: "SDE", CTCLPA: 18.5, MinCGPA: 7}
	require.NoError(t, db.Create(&job).Error)

	app := models.Application{StudentID: placed.ID, JobID: job.ID, Status: models.ApplicationStatusAccepted}
	require.NoError(t, db.Create(&app).Error)
	require.NoError(t, db.Create(&models.Offer{
		ApplicationID: app.ID,
		OfferDate:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		OfferStatus:   models.OfferStatusAccepted,
	}).Error)

	stats, err := svc.BranchPlacementStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	cse := stats[0]
	require.Equal(t, "Computer Science", cse.BranchName)
	require.EqualValues(t, 2, cse.TotalStudents)
	require.EqualValues(t, 1, cse.PlacedStudents)
	require.Equal(t, "18.50", cse.HighestPackage)
	require.Equal(t, "18.50", cse.AveragePackage)

	mech := stats[1]
	require.Equal(t, "Mechanical", mech.BranchName)
	require.EqualValues(t, 0, mech.TotalStudents)
	require.Equal(t, "N/A", mech.HighestPackage)
	require.Equal(t, "N/A", mech.AveragePackage)
}

func TestBranchPlacementStatsServedFromCache(t *testing.T) {
	db := setupDB(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := newAdminService(db, cache)

	require.NoError(t, db.Create(&models.Branch{Code: "CSE", Name: "Computer Science"}).Error)

	first, err := svc.BranchPlacementStats(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.True(t, mr.Exists("stats:branch_placement"))

	// A new branch appears in the store but not in the cached report until
	// the TTL expires.
	require.NoError(t, db.Create(&models.Branch{Code: "ME", Name: "Mechanical"}).Error)

	cached, err := svc.BranchPlacementStats(context.Background())
	require.NoError(t, err)
	require.Len(t, cached, 1)

	mr.FastForward(2 * time.Minute)

	refreshed, err := svc.BranchPlacementStats(context.Background())
	require.NoError(t, err)
	require.Len(t, refreshed, 2)
}
