package dto

type JWTRequest struct {
	Email string `json:"email"`
}
