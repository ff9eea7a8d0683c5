package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_DecrementVacancy(t *testing.T) {
	testCases := []struct {
		name          string
		rowsAffected  int64
		expectApplied bool
	}{
		{name: "vacancy available, decrement applies", rowsAffected: 1, expectApplied: true},
		{name: "room full or missing, decrement refused", rowsAffected: 0, expectApplied: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newTestDB(t)
			s := NewGormStore(gormDB)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE "hostelroomdetails" SET`)).
				WithArgs(Any{}, "R1", "H1").
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))
			mock.ExpectCommit()

			applied, err := s.DecrementVacancy(context.Background(), "R1", "H1")
			assert.NoError(t, err)
			assert.Equal(t, tc.expectApplied, applied)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormStore_DecrementVacancyGuardsCounter(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	// The predicate must carry the vacancies > 0 guard so the counter can
	// never go negative under concurrent applicants.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`vacancies > 0`)).
		WithArgs(Any{}, "R1", "H1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := s.DecrementVacancy(context.Background(), "R1", "H1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_IncrementVacancyMissingRoom(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "hostelroomdetails" SET`)).
		WithArgs(Any{}, "R9", "H1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.IncrementVacancy(context.Background(), "R9", "H1")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteOccupantScope(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	// The delete must be scoped by all three keys.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "occupantdetails" WHERE userid = $1 AND hostelid = $2 AND roomid = $3`)).
		WithArgs("U1", "H1", "R1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := s.DeleteOccupant(context.Background(), "U1", "H1", "R1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
