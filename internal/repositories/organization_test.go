package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func organizationColumns() []string {
	return []string{"id", "name", "user_id", "created_at", "updated_at"}
}

func TestOrganizationReadRepository_GetByIDAndUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewOrganizationReadRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM organizations")).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(sqlmock.NewRows(organizationColumns()).
				AddRow(int64(3), "Acme Clinic", int64(7), now, now))

		org, err := repo.GetByIDAndUser(ctx, 3, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Acme Clinic", org.Name)
		assert.Equal(t, int64(7), org.UserID)
	})

	t.Run("foreign owner returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM organizations")).
			WithArgs(int64(3), int64(9)).
			WillReturnError(sql.ErrNoRows)

		org, err := repo.GetByIDAndUser(ctx, 3, 9)
		assert.NoError(t, err)
		assert.Nil(t, org)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationReadRepository_Exists(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewOrganizationReadRepository(sqlxDB)
	ctx := context.Background()

	t.Run("exists regardless of owner", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM organizations WHERE id = $1)")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.Exists(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM organizations WHERE id = $1)")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.Exists(ctx, 99)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationReadRepository_ListByUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewOrganizationReadRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()

	t.Run("paginates with offset and limit", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("OFFSET $2 LIMIT $3")).
			WithArgs(int64(7), 5, 2).
			WillReturnRows(sqlmock.NewRows(organizationColumns()).
				AddRow(int64(6), "F", int64(7), now, now).
				AddRow(int64(7), "G", int64(7), now, now))

		orgs, err := repo.ListByUser(ctx, 7, 5, 2)
		assert.NoError(t, err)
		assert.Len(t, orgs, 2)
		assert.Equal(t, int64(6), orgs[0].ID)
	})

	t.Run("empty page returns an empty slice", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("OFFSET $2 LIMIT $3")).
			WithArgs(int64(7), 100, 10).
			WillReturnRows(sqlmock.NewRows(organizationColumns()))

		orgs, err := repo.ListByUser(ctx, 7, 100, 10)
		assert.NoError(t, err)
		assert.NotNil(t, orgs)
		assert.Empty(t, orgs)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewOrganizationWriteRepository(sqlxDB, nil)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO organizations")).
		WithArgs("Acme Clinic", int64(7)).
		WillReturnRows(sqlmock.NewRows(organizationColumns()).
			AddRow(int64(1), "Acme Clinic", int64(7), now, now))

	org, err := repo.Save(context.Background(), "Acme Clinic", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), org.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationWriteRepository_UpdateName(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewOrganizationWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	now := time.Now()

	t.Run("updates owned organization", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE organizations")).
			WithArgs(int64(3), int64(7), "Renamed").
			WillReturnRows(sqlmock.NewRows(organizationColumns()).
				AddRow(int64(3), "Renamed", int64(7), now, now))

		org, err := repo.UpdateName(ctx, 3, 7, "Renamed")
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", org.Name)
	})

	t.Run("foreign organization returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE organizations")).
			WithArgs(int64(3), int64(9), "Renamed").
			WillReturnError(sql.ErrNoRows)

		org, err := repo.UpdateName(ctx, 3, 9, "Renamed")
		assert.NoError(t, err)
		assert.Nil(t, org)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationWriteRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewOrganizationWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	now := time.Now()

	t.Run("deletes owned organization and returns last state", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM organizations")).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(sqlmock.NewRows(organizationColumns()).
				AddRow(int64(3), "Acme Clinic", int64(7), now, now))

		org, err := repo.Delete(ctx, 3, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Acme Clinic", org.Name)
	})

	t.Run("absent organization returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM organizations")).
			WithArgs(int64(99), int64(7)).
			WillReturnError(sql.ErrNoRows)

		org, err := repo.Delete(ctx, 99, 7)
		assert.NoError(t, err)
		assert.Nil(t, org)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM organizations")).
			WithArgs(int64(3), int64(7)).
			WillReturnError(errors.New("db error"))

		org, err := repo.Delete(ctx, 3, 7)
		assert.Error(t, err)
		assert.Nil(t, org)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
