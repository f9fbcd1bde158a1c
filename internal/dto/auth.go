package dto

// LoginRequest is the payload for obtaining a bearer token.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
