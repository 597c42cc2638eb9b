package models

import "time"

// Job is an employer-posted opening. Eligibility is decided by CGPA,
// backlog count and branch; required skills are advisory only and never
// filter candidates.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uint      `gorm:"not null;index" json:"company_id"`
	Company     Company   `json:"-"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	CTCLPA      float64   `gorm:"column:ctc_lpa;not null" json:"ctc_lpa"`
	MinCGPA     float64   `gorm:"column:min_cgpa;not null" json:"min_cgpa"`
	MaxBacklogs int       `gorm:"not null;default:0" json:"max_backlogs"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// An empty branch set means the job is open to every branch.
	Branches []Branch `gorm:"many2many:job_branches" json:"-"`
	Skills   []Skill  `gorm:"many2many:job_skills" json:"-"`
}
