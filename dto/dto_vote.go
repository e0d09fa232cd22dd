package dto

// VoteRequestDTO mirrors the PATCH /vote/:id body. Vote is "up" | "down".
type VoteRequestDTO struct {
	Email string `json:"email"`
	Vote  string `json:"vote"`
}

type VoteResponse struct {
	Message   string `json:"message"`
	TotalVote int    `json:"totalVote"`
}
