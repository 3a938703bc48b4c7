package api

import (
	"errors"
	"time"

	"github.com/taskflow/taskflow/internal/server/models"
)

// Request DTOs. Field constraints are checked at this boundary before
// anything enters a service flow.

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *registerRequest) Validate() error {
	if n := len(r.Name); n < 1 || n > 100 {
		return errors.New("name must be 1-100 characters")
	}
	if n := len(r.Email); n < 5 || n > 255 {
		return errors.New("email must be 5-255 characters")
	}
	if n := len(r.Password); n < 8 || n > 128 {
		return errors.New("password must be 8-128 characters")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (r *createTaskRequest) Validate() error {
	if n := len(r.Title); n < 1 || n > 200 {
		return errors.New("title must be 1-200 characters")
	}
	return nil
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}

func (r *updateTaskRequest) Validate() error {
	if r.Title != nil {
		if n := len(*r.Title); n < 1 || n > 200 {
			return errors.New("title must be 1-200 characters")
		}
	}
	return nil
}

// Response DTOs. userResponse is the public-safe projection of a user; the
// password hash has no representation here at all.

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func newAuthResponse(u *models.User, token string) authResponse {
	return authResponse{
		User:  userResponse{ID: u.ID, Email: u.Email, Name: u.Name},
		Token: token,
	}
}

type taskResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
