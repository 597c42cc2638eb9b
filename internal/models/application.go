package models

import "time"

// ApplicationStatus is the closed set of application lifecycle states.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationStatusOffered     ApplicationStatus = "OFFERED"
	ApplicationStatusAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

// applicationTransitions is the forward-only transition table consulted by
// the admin status-change operation. ACCEPTED is deliberately absent from
// every target set: it is reachable only through offer finalization.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:     {ApplicationStatusShortlisted, ApplicationStatusRejected},
	ApplicationStatusShortlisted: {ApplicationStatusInterviewed, ApplicationStatusRejected},
	ApplicationStatusInterviewed: {ApplicationStatusOffered, ApplicationStatusRejected},
	ApplicationStatusOffered:     {ApplicationStatusRejected},
}

// ParseApplicationStatus maps a wire value onto the closed status set.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	status := ApplicationStatus(value)
	switch status {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusInterviewed,
		ApplicationStatusOffered, ApplicationStatusAccepted, ApplicationStatusRejected:
		return status, true
	default:
		return "", false
	}
}

// Terminal reports whether no further transition is possible from the status.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransition reports whether the status-change operation may move an
// application from one status to another.
func CanTransition(from, to ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Application is a student's request to be considered for a job.
type Application struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	StudentID uint              `gorm:"not null;uniqueIndex:idx_student_job" json:"student_id"`
	Student   Student           `json:"-"`
	JobID     uint              `gorm:"not null;uniqueIndex:idx_student_job" json:"job_id"`
	Job       Job               `json:"-"`
	Status    ApplicationStatus `gorm:"size:16;not null;default:APPLIED;index" json:"status"`
	AppliedAt time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
