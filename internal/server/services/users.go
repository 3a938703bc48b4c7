// Package services implements the application flows on top of the
// repositories: credential issuance and verification, and ownership-scoped
// task operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/taskflow/internal/common"
	"github.com/taskflow/taskflow/internal/server/auth"
	"github.com/taskflow/taskflow/internal/server/config"
	"github.com/taskflow/taskflow/internal/server/models"
	"github.com/taskflow/taskflow/internal/server/repositories/repomanager"
)

// AuthResult is what a successful registration or login yields: the stored
// user and a freshly signed bearer token for it.
type AuthResult struct {
	User  *models.User
	Token string
}

type UserService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration

	// dummyHash is compared against when login hits an unknown email so
	// that path burns roughly the same bcrypt work as a wrong password.
	dummyHash string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	dummyHash, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		dummyHash = ""
	}

	return &UserService{
		db:            db,
		repos:         m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		dummyHash:     dummyHash,
	}
}

// NormalizeEmail lowercases and trims an email address. It is applied before
// every comparison and every write, so the normalized form is the only one
// the store ever sees.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and signs a token for it.
//
// The pre-insert lookup gives the common duplicate case a clean error
// without a write; the unique index on email closes the race between
// concurrent registrations, and the repository reports that violation as
// the same common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {

	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	repo := s.repos.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and signs a token. Unknown email and wrong
// password both return common.ErrInvalidCredentials; store failures pass
// through as common.ErrUnavailable and are never folded into it.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	email = NormalizeEmail(email)

	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.CheckPassword(password, s.dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}
