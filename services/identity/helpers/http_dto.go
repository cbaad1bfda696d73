package helpers

import "auction-house/internal/models"

// Credentials are checked by the identity service, not by binding, so a short
// password is reported as invalid credentials rather than a malformed payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
