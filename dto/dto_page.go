package dto

import "ziffy_backend/model"

type PostPage struct {
	Posts      []model.Post `json:"posts"`
	TotalPages int64        `json:"totalPages"`
}
