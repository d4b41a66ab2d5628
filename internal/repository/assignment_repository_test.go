package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

func newAssignmentRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func assignmentRows(assignments ...models.Assignment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "session_date", "time_slot_id", "coach_id", "client_id", "created_via", "justification", "created_at"})
	for _, a := range assignments {
		rows.AddRow(a.ID, a.Date, a.TimeSlotID, a.CoachID, a.ClientID, a.CreatedVia, a.Justification, time.Now())
	}
	return rows
}

func TestAssignmentRepositoryListByDate(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("session_date = $1")).
		WithArgs("2025-03-10").
		WillReturnRows(assignmentRows(
			models.Assignment{ID: "a1", Date: "2025-03-10", TimeSlotID: "8-10", CoachID: "coach-1", ClientID: "c1", CreatedVia: "normal"},
			models.Assignment{ID: "a2", Date: "2025-03-10", TimeSlotID: "10-12", CoachID: "coach-1", ClientID: "c2", CreatedVia: "special", Justification: "make-up"},
		))

	assignments, err := repo.ListByDate(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	require.Equal(t, "a1", assignments[0].ID)
	require.Equal(t, "make-up", assignments[1].Justification)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("session_date = $1 AND client_id = $2 AND time_slot_id = $3")).
		WithArgs("2025-03-10", "c1", "8-10").
		WillReturnRows(assignmentRows())

	_, err := repo.List(context.Background(), models.AssignmentFilter{
		Date:       "2025-03-10",
		ClientID:   "c1",
		TimeSlotID: "8-10",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryExistsFor(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM assignments")).
		WithArgs("2025-03-10", "8-10", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	exists, err := repo.ExistsFor(context.Background(), "2025-03-10", "8-10", "c1")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM assignments")).
		WithArgs("2025-03-10", "8-10", "c2").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	exists, err = repo.ExistsFor(context.Background(), "2025-03-10", "8-10", "c2")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assignments")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assignment := &models.Assignment{
		Date:       "2025-03-10",
		TimeSlotID: "8-10",
		CoachID:    "coach-1",
		ClientID:   "c1",
		CreatedVia: "normal",
	}
	require.NoError(t, repo.Create(context.Background(), assignment))
	require.NotEmpty(t, assignment.ID)
	require.False(t, assignment.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryDeleteMissingIsNoOp(t *testing.T) {
	db, mock, cleanup := newAssignmentRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM assignments")).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "gone"))
	require.NoError(t, mock.ExpectationsWereMet())
}
