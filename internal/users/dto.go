package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
)

// CreateUserInput carries the fields accepted when registering a user.
type CreateUserInput struct {
	Username   string     `json:"username" validate:"required,min=3,max=64"`
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=8"`
	FullName   string     `json:"full_name" validate:"required,min=2"`
	Role       enums.Role `json:"role" validate:"required"`
	Department *string    `json:"department,omitempty" validate:"omitempty,max=64"`
}

// UpdateUserInput carries the optional fields of a user update.
type UpdateUserInput struct {
	Email      *string     `json:"email,omitempty" validate:"omitempty,email"`
	FullName   *string     `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Role       *enums.Role `json:"role,omitempty"`
	Department *string     `json:"department,omitempty" validate:"omitempty,max=64"`
	IsActive   *bool       `json:"is_active,omitempty"`
}

// UserDTO is the API-facing projection of a user.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        enums.Role `json:"role"`
	Department  *string    `json:"department,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserList wraps a page of users plus the next cursor.
type UserList struct {
	Users      []UserDTO `json:"users"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// Filters narrows the user list query.
type Filters struct {
	Role       *enums.Role
	Department *string
	ActiveOnly bool
	Query      string
}

// FromModel maps a persisted user onto the API projection.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        user.Role,
		Department:  user.Department,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
