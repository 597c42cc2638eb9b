package dto

import (
	"time"

	"github.com/campushq/placement-api/internal/models"
)

// ApplyRequest submits a new application for a job.
type ApplyRequest struct {
	StudentID uint `json:"student_id" validate:"required"`
	JobID     uint `json:"job_id" validate:"required"`
}

// UpdateStatusRequest moves an application through the lifecycle.
type UpdateStatusRequest struct {
	ApplicationID uint   `json:"application_id" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

// AcceptOfferRequest finalizes an offered application.
type AcceptOfferRequest struct {
	ApplicationID uint `json:"application_id" validate:"required"`
}

// StudentApplicationResponse is one row of a student's application history.
type StudentApplicationResponse struct {
	ApplicationID uint      `json:"application_id"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
	Title         string    `json:"title"`
	CompanyName   string    `json:"company_name"`
}

// NewStudentApplicationResponse maps an application with preloaded job/company.
func NewStudentApplicationResponse(app models.Application) StudentApplicationResponse {
	return StudentApplicationResponse{
		ApplicationID: app.ID,
		Status:        string(app.Status),
		AppliedAt:     app.AppliedAt,
		Title:         app.Job.Title,
		CompanyName:   app.Job.Company.Name,
	}
}

// ApplicationOverviewResponse is the admin management/finalization row.
type ApplicationOverviewResponse struct {
	ApplicationID uint   `json:"application_id"`
	StudentName   string `json:"student_name"`
	CompanyName   string `json:"company_name"`
	Title         string `json:"title"`
	Status        string `json:"status"`
}

// NewApplicationOverviewResponse maps an application with preloaded student and job.
func NewApplicationOverviewResponse(app models.Application) ApplicationOverviewResponse {
	return ApplicationOverviewResponse{
		ApplicationID: app.ID,
		StudentName:   app.Student.Name,
		CompanyName:   app.Job.Company.Name,
		Title:         app.Job.Title,
		Status:        string(app.Status),
	}
}

// FinalizedOfferResponse confirms a committed offer acceptance.
type FinalizedOfferResponse struct {
	ApplicationID uint      `json:"application_id"`
	Status        string    `json:"status"`
	OfferDate     time.Time `json:"offer_date"`
}
