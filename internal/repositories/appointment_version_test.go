package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentVersionReadRepository_ListByAppointment(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewAppointmentVersionReadRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()
	columns := []string{"id", "appointment_id", "start_time", "end_time", "created_at"}

	t.Run("returns snapshots oldest first", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM appointment_versions")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(10), int64(1), now.Add(-2*time.Hour), now.Add(-time.Hour), now.Add(-time.Minute)).
				AddRow(int64(11), int64(1), now.Add(-time.Hour), now, now))

		versions, err := repo.ListByAppointment(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, versions, 2)
		assert.Equal(t, int64(10), versions[0].ID)
		assert.Equal(t, int64(1), versions[0].AppointmentID)
	})

	t.Run("no snapshots returns an empty slice", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM appointment_versions")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(columns))

		versions, err := repo.ListByAppointment(ctx, 2)
		assert.NoError(t, err)
		assert.NotNil(t, versions)
		assert.Empty(t, versions)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentVersionWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewAppointmentVersionWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	start := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("appends a snapshot", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_versions")).
			WithArgs(int64(1), start, end).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Save(ctx, 1, start, end)
		assert.NoError(t, err)
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_versions")).
			WithArgs(int64(1), start, end).
			WillReturnError(errors.New("db error"))

		err := repo.Save(ctx, 1, start, end)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentVersionWriteRepository_SaveUsesTx(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	start := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_versions")).
		WithArgs(int64(1), start, end).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	assert.NoError(t, err)

	repo := NewAppointmentVersionWriteRepository(sqlxDB, func(ctx context.Context) *sqlx.Tx { return tx })

	err = repo.Save(context.Background(), 1, start, end)
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
