package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	// Password is accepted and, by default, ignored. See pkg/auth.
	Password string `json:"password" validate:"omitempty,max=255"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

// MeResponse carries the current user, or null when not logged in.
type MeResponse struct {
	User *UserResponse `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
