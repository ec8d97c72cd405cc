package dto

import (
	"time"

	"afriverse.co/editorial/internal/model"
)

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=contributor author senior_writer editor admin super_admin"`
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(items []model.User) []*UserResponse {
	out := make([]*UserResponse, len(items))
	for i := range items {
		out[i] = ToUserResponse(&items[i])
	}
	return out
}
