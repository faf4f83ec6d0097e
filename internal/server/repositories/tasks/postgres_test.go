package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"taskpurse/internal/common"
	"taskpurse/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListByUser_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+.*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "description", "completed", "category", "deadline", "created_at", "user_id"}).
		AddRow("t-2", "newer", "", false, "", nil, now, "u-1").
		AddRow("t-1", "older", "", true, "home", nil, now.Add(-time.Hour), "u-1")
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t-2" || got[1].ID != "t-1" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+.*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2`
	mock.ExpectQuery(q).WithArgs("u-1", "nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u-1", "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_OnlyNamedColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+completed\s*=\s*\$3\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("u-1", "t-1", true).WillReturnResult(sqlmock.NewResult(0, 1))

	completed := true
	err := repo.Update(context.Background(), "u-1", "t-1", models.TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_NullDeadline(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+deadline\s*=\s*\$3\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("u-1", "t-1", nil).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "u-1", "t-1", models.TaskPatch{DeadlineSet: true})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)UPDATE\s+tasks\s+SET`
	mock.ExpectExec(q).WithArgs("u-1", "nope", "x").WillReturnResult(sqlmock.NewResult(0, 0))

	title := "x"
	err := repo.Update(context.Background(), "u-1", "nope", models.TaskPatch{Title: &title})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.Update(context.Background(), "u-1", "t-1", models.TaskPatch{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no sql should run for an empty patch: %v", err)
	}
}

func TestDelete_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)DELETE\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2`
	mock.ExpectExec(q).WithArgs("u-1", "nope").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "u-1", "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
