package dto

import (
	"strings"

	"github.com/campushq/placement-api/internal/models"
)

// EligibleJobResponse is one opening a student may still apply to.
type EligibleJobResponse struct {
	JobID          uint    `json:"job_id"`
	CompanyName    string  `json:"company_name"`
	Title          string  `json:"title"`
	CTCLPA         float64 `json:"ctc_lpa"`
	MinCGPA        float64 `json:"min_cgpa"`
	RequiredSkills string  `json:"required_skills"`
}

// NewEligibleJobResponse flattens a job with its preloaded company and skills.
func NewEligibleJobResponse(job models.Job) EligibleJobResponse {
	names := make([]string, 0, len(job.Skills))
	for _, skill := range job.Skills {
		names = append(names, skill.Name)
	}

	return EligibleJobResponse{
		JobID:          job.ID,
		CompanyName:    job.Company.Name,
		Title:          job.Title,
		CTCLPA:         job.CTCLPA,
		MinCGPA:        job.MinCGPA,
		RequiredSkills: strings.Join(names, ", "),
	}
}
