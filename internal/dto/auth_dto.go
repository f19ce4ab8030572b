package dto

import "github.com/raghavenderreddy1707/Labour-Hub/internal/models"

type RegisterRequest struct {
	Role       models.Role `json:"role"`
	Name       string      `json:"name"`
	Location   string      `json:"location"`
	Contact    string      `json:"contact"`
	Profession string      `json:"profession"`
}

type LoginRequest struct {
	Role    models.Role `json:"role"`
	Contact string      `json:"contact"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// MeResponse is the header view of the signed-in user. Stats counts
// applications for a laborer and posted jobs for a provider.
type MeResponse struct {
	User  *models.User `json:"user"`
	Stats int          `json:"stats"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	Driver    string `json:"driver"`
}
