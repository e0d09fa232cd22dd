package dto

import "ziffy_backend/model"

type SetBadgeRequest struct {
	Plan string `json:"plan"`
}

type UserProfileResponse struct {
	User  model.User   `json:"user"`
	Posts []model.Post `json:"posts"`
}

type SiteStatsResponse struct {
	PostCount    int64 `json:"postCount"`
	CommentCount int64 `json:"commentCount"`
	UserCount    int64 `json:"userCount"`
}
