package mysql_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
)

func TestAddThread(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-123", "dicoding")
	repo := mysqlRepo.NewThreadRepository(db, fixedIDs("123"))

	got, err := repo.AddThread(context.TODO(), domain.ThreadDraft{
		Title: "sebuah thread", Body: "sebuah body thread", UserID: "user-123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Thread{ID: "thread-123", Title: "sebuah thread", Body: "sebuah body thread", Owner: "user-123"}, got)
	assert.NoError(t, repo.VerifyThreadID(context.TODO(), "thread-123"))
}

func TestVerifyThreadID(t *testing.T) {
	db := newTestDB(t)
	repo := mysqlRepo.NewThreadRepository(db, nil)

	err := repo.VerifyThreadID(context.TODO(), "thread-xxx")
	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
}

func TestGetThreadDetail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-123", "dicoding")
	seedThread(t, db, "thread-123", "user-123")
	repo := mysqlRepo.NewThreadRepository(db, nil)

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetThreadDetail(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "thread-123", got.ID)
		assert.Equal(t, "sebuah thread", got.Title)
		assert.Equal(t, "dicoding", got.Username)
		assert.Equal(t, "2021-08-08T07:19:09.775Z", got.Date)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetThreadDetail(context.TODO(), "thread-xxx")
		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
	})
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestVerifyThreadID_MySQL(t *testing.T) {
	query := regexp.QuoteMeta("SELECT count(*) FROM `threads` WHERE id = ?")

	t.Run("exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

		err := mysqlRepo.NewThreadRepository(db, nil).VerifyThreadID(context.TODO(), "thread-123")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("thread-xxx").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

		err := mysqlRepo.NewThreadRepository(db, nil).VerifyThreadID(context.TODO(), "thread-xxx")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
