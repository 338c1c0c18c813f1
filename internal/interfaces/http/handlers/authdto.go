package handlers

import (
	"time"

	"deskd/internal/application/user/usecases"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SkillResponse struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type UserResponse struct {
	ID          uint            `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	Skills      []SkillResponse `json:"skills"`
	TeamID      *uint           `json:"team_id,omitempty"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func newUserResponse(r *usecases.UserResult) *UserResponse {
	skills := make([]SkillResponse, 0, len(r.Skills))
	for _, s := range r.Skills {
		skills = append(skills, SkillResponse{
			Category:    s.Category,
			Name:        s.Name,
			Proficiency: s.Proficiency,
		})
	}

	return &UserResponse{
		ID:          r.UserID,
		Email:       r.Email,
		Name:        r.Name,
		DisplayName: r.DisplayName,
		Role:        r.Role,
		Status:      r.Status,
		Skills:      skills,
		TeamID:      r.TeamID,
		LastLoginAt: r.LastLoginAt,
		CreatedAt:   r.CreatedAt,
	}
}
