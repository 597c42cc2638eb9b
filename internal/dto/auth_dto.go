package dto

// RegisterRequest is the payload for student self-registration.
type RegisterRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone"`
	BranchCode     string  `json:"branch_code" validate:"required"`
	BatchYear      int     `json:"batch_year" validate:"required,gte=2000"`
	CGPA           float64 `json:"cgpa" validate:"required,gte=0,lte=10"`
	ActiveBacklogs int     `json:"active_backlogs" validate:"gte=0"`
	Password       string  `json:"password" validate:"required,min=6"`
}

// LoginRequest carries credentials for student and admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser identifies the logged-in principal returned to the client.
type AuthUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}
