package dto

type LoginRequestDTO struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	IsTeacher bool   `json:"is_teacher"`
}

// LoginResponseDTO: teachers additionally receive a bearer token for the
// admin routes; students get their id for subsequent calls.
type LoginResponseDTO struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	StudentID     string `json:"student_id,omitempty"`
	Token         string `json:"token,omitempty"`
}

type VisibilityDTO struct {
	Visible *bool `json:"visible" binding:"required"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
