package models

// Skill is a competency tag attached to students and job requirements.
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"skill_id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"skill_name"`
}
