package repository

import (
	"context"

	"gorm.io/gorm"
)

// BranchPlacementRow is one branch of the placement aggregation.
type BranchPlacementRow struct {
	BranchName     string
	TotalStudents  int64
	PlacedStudents int64
	HighestPackage *float64
	AveragePackage *float64
}

// StatsRepository runs the reporting aggregations.
type StatsRepository interface {
	BranchPlacement(ctx context.Context) ([]BranchPlacementRow, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository constructs a stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// BranchPlacement aggregates approved students and accepted offers per
// branch. Placed counts and package figures only consider offers whose
// status is ACCEPTED.
func (r *statsRepository) BranchPlacement(ctx context.Context) ([]BranchPlacementRow, error) {
	var rows []BranchPlacementRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.name AS branch_name,
			COUNT(DISTINCT s.id) AS total_students,
			COUNT(DISTINCT CASE WHEN o.offer_status = 'ACCEPTED' THEN s.id END) AS placed_students,
			MAX(CASE WHEN o.offer_status = 'ACCEPTED' THEN j.ctc_lpa END) AS highest_package,
			AVG(CASE WHEN o.offer_status = 'ACCEPTED' THEN j.ctc_lpa END) AS average_package
		FROM branches b
		LEFT JOIN students s ON s.branch_code = b.code AND s.status = 'APPROVED'
		LEFT JOIN applications a ON a.student_id = s.id
		LEFT JOIN offers o ON o.application_id = a.id
		LEFT JOIN jobs j ON j.id = a.job_id
		GROUP BY b.name
		ORDER BY b.name`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
