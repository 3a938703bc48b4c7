package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/taskflow/taskflow/internal/common"
	"github.com/taskflow/taskflow/internal/dbx"
	"github.com/taskflow/taskflow/internal/server/auth"
	"github.com/taskflow/taskflow/internal/server/config"
	"github.com/taskflow/taskflow/internal/server/models"
	tasksrepo "github.com/taskflow/taskflow/internal/server/repositories/tasks"
	usersrepo "github.com/taskflow/taskflow/internal/server/repositories/users"
)

// --- fakes ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	getErr  error
	writes  int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrEmailTaken
	}
	f.writes++
	cp := *u
	f.byEmail[u.Email] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository      { return m.t }

func newUserService(t *testing.T, u *fakeUsersRepo) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:     "k",
		TokenValidity: time.Hour,
	}
	return NewUserService(nil, &fakeRepoManager{u: u}, cfg)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	res, err := s.Register(context.Background(), "  Alice  ", "Alice@Example.com ", "hunter2pass")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if res.User.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", res.User.Email)
	}
	if res.User.Name != "Alice" {
		t.Fatalf("name not trimmed: %q", res.User.Name)
	}
	if res.User.ID == "" {
		t.Fatalf("user must get an id")
	}
	if res.User.PasswordHash == "hunter2pass" || res.User.PasswordHash == "" {
		t.Fatalf("plaintext must be hashed")
	}
	if !auth.CheckPassword("hunter2pass", res.User.PasswordHash) {
		t.Fatalf("stored hash must verify the password")
	}
	if repo.writes != 1 {
		t.Fatalf("expected exactly one durable write, got %d", repo.writes)
	}

	// The token's verified subject must be the new user's id.
	sub, err := auth.GetUserIDFromToken(res.Token, []byte("k"))
	if err != nil {
		t.Fatalf("token must verify: %v", err)
	}
	if sub != res.User.ID {
		t.Fatalf("token subject %q != user id %q", sub, res.User.ID)
	}
}

func TestRegister_DuplicateNormalizedEmail(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	if _, err := s.Register(context.Background(), "Alice", "alice@example.com", "hunter2pass"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	// Differs only in case and surrounding whitespace.
	_, err := s.Register(context.Background(), "Mallory", " ALICE@example.com ", "otherpassword")
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("want common.ErrEmailTaken, got %v", err)
	}
	if repo.writes != 1 {
		t.Fatalf("duplicate registration must not write, got %d writes", repo.writes)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	reg, err := s.Register(context.Background(), "Alice", "alice@example.com", "hunter2pass")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	res, err := s.Login(context.Background(), "alice@example.com", "hunter2pass")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	sub, err := auth.GetUserIDFromToken(res.Token, []byte("k"))
	if err != nil {
		t.Fatalf("token must verify: %v", err)
	}
	if sub != reg.User.ID {
		t.Fatalf("login token subject %q != registered id %q", sub, reg.User.ID)
	}
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	if _, err := s.Register(context.Background(), "Alice", "alice@example.com", "hunter2pass"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := s.Login(context.Background(), "ALICE@example.com", "hunter2pass"); err != nil {
		t.Fatalf("case-differing login must succeed: %v", err)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_UniformInvalidCredentials(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(t, repo)

	if _, err := s.Register(context.Background(), "Alice", "alice@example.com", "hunter2pass"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errUnknown := s.Login(context.Background(), "nobody@example.com", "hunter2pass")
	_, errWrongPw := s.Login(context.Background(), "alice@example.com", "wrong-password")

	if !errors.Is(errUnknown, common.ErrInvalidCredentials) {
		t.Fatalf("unknown email: want common.ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want common.ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("error shapes differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLogin_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	repo := newFakeUsersRepo()
	repo.getErr = common.ErrUnavailable
	s := newUserService(t, repo)

	_, err := s.Login(context.Background(), "alice@example.com", "hunter2pass")
	if !errors.Is(err, common.ErrUnavailable) {
		t.Fatalf("want common.ErrUnavailable, got %v", err)
	}
	if errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("store failure must not look like bad credentials")
	}
}
