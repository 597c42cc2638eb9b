package dto

import "github.com/campushq/placement-api/internal/models"

// StudentSummaryResponse is the admin-facing roster row.
type StudentSummaryResponse struct {
	StudentID  uint    `json:"student_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	CGPA       float64 `json:"cgpa"`
	BranchCode string  `json:"branch_code"`
}

// NewStudentSummaryResponse maps a student onto the roster row shape.
func NewStudentSummaryResponse(student models.Student, includeEmail bool) StudentSummaryResponse {
	summary := StudentSummaryResponse{
		StudentID:  student.ID,
		Name:       student.Name,
		CGPA:       student.CGPA,
		BranchCode: student.BranchCode,
	}
	if includeEmail {
		summary.Email = student.Email
	}
	return summary
}

// BranchResponse is a registration-form lookup row.
type BranchResponse struct {
	BranchCode string `json:"branch_code"`
	BranchName string `json:"branch_name"`
}

// SkillResponse is a skill lookup row.
type SkillResponse struct {
	SkillID   uint   `json:"skill_id"`
	SkillName string `json:"skill_name"`
}

// NewSkillResponseSlice maps skills onto lookup rows.
func NewSkillResponseSlice(skills []models.Skill) []SkillResponse {
	responses := make([]SkillResponse, 0, len(skills))
	for _, skill := range skills {
		responses = append(responses, SkillResponse{SkillID: skill.ID, SkillName: skill.Name})
	}
	return responses
}

// UpdateSkillsRequest replaces a student's skill profile wholesale.
type UpdateSkillsRequest struct {
	Skills []uint `json:"skills"`
}
