package dto

type SimpleLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SessionResponse struct {
	User  *SessionUser `json:"user"`
	Level string       `json:"level"`
}
