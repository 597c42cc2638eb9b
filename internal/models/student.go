package models

import "time"

// StudentStatus captures the account lifecycle of a registered student.
type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "PENDING"
	StudentStatusApproved StudentStatus = "APPROVED"
	StudentStatusRejected StudentStatus = "REJECTED"
)

// Student represents a candidate registered with the placement cell.
type Student struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"size:255;not null" json:"name"`
	Email          string        `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone          string        `gorm:"size:32" json:"phone"`
	BranchCode     string        `gorm:"size:16;not null;index" json:"branch_code"`
	BatchYear      int           `gorm:"not null" json:"batch_year"`
	CGPA           float64       `gorm:"not null" json:"cgpa"`
	ActiveBacklogs int           `gorm:"not null;default:0" json:"active_backlogs"`
	PasswordHash   string        `gorm:"size:255;not null" json:"-"`
	Status         StudentStatus `gorm:"size:16;not null;default:PENDING;index" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Skills         []Skill       `gorm:"many2many:student_skills" json:"-"`
}
