package models

// Branch is an academic department students belong to.
type Branch struct {
	Code string `gorm:"primaryKey;size:16" json:"branch_code"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"branch_name"`
}
