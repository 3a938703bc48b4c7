package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/taskflow/taskflow/internal/common"
	"github.com/taskflow/taskflow/internal/server/models"
)

const ownerID = "3f2a6f9e-0000-0000-0000-000000000001"

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+tasks\s*\(user_id,\s*title,\s*description,\s*is_completed,\s*created_at,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id\s*$`

	now := time.Now().UTC()
	mock.ExpectQuery(q).
		WithArgs(ownerID, "buy milk", nil, false, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	task := &models.Task{UserID: ownerID, Title: "buy milk", CreatedAt: now, UpdatedAt: now}
	got, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestListByUser_ScopedByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*title,.*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "is_completed", "created_at", "updated_at"}).
		AddRow(int64(1), ownerID, "a", nil, false, now, now).
		AddRow(int64(2), ownerID, "b", "details", true, now, now)
	mock.ExpectQuery(q).
		WithArgs(ownerID).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[1].Description == nil || *got[1].Description != "details" {
		t.Fatalf("unexpected tasks: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestGetByID_NotFoundForOtherOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectQuery(q).
		WithArgs(int64(7), "someone-else").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "someone-else", 7)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestUpdate_NoRowNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+title\s*=\s*\$1,.*WHERE\s+id\s*=\s*\$5\s+AND\s+user_id\s*=\s*\$6\s*$`

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))

	now := time.Now().UTC()
	task := &models.Task{ID: 9, UserID: ownerID, Title: "t", UpdatedAt: now}
	_, err := repo.Update(context.Background(), task)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound for zero affected rows, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(3), ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), ownerID, 3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+tasks`

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), ownerID, 3)
	if !errors.Is(err, common.ErrUnavailable) {
		t.Fatalf("want common.ErrUnavailable, got %v", err)
	}
}
