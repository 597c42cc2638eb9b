package dto

// BranchPlacementStatsResponse is one branch row of the placement report.
// Package figures are pre-formatted to two decimals with "N/A" standing in
// for branches without an accepted offer.
type BranchPlacementStatsResponse struct {
	BranchName     string `json:"branch_name"`
	TotalStudents  int64  `json:"total_students"`
	PlacedStudents int64  `json:"placed_students"`
	HighestPackage string `json:"highest_package"`
	AveragePackage string `json:"average_package"`
}
