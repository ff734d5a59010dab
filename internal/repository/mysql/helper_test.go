package mysql_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

// newTestDB opens a migrated in-memory sqlite database. One connection keeps every
// query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, mysqlRepo.AutoMigrate(db))
	return db
}

// fixedIDs hands out the given ids in order.
func fixedIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i]
		i++
		return id
	}
}

var baseTime = time.Date(2021, 8, 8, 7, 19, 9, 775_000_000, time.UTC)

func seedUser(t *testing.T, db *gorm.DB, id, username string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{
		ID: id, Username: username, Password: "hashed", Fullname: username, CreatedAt: baseTime,
	}).Error)
}

func seedThread(t *testing.T, db *gorm.DB, id, userID string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Thread{
		ID: id, Title: "sebuah thread", Body: "sebuah body thread", UserID: userID, CreatedAt: baseTime,
	}).Error)
}

func seedComment(t *testing.T, db *gorm.DB, id, threadID, userID string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Comment{
		ID: id, ThreadID: threadID, UserID: userID, Content: "isi " + id, CreatedAt: at,
	}).Error)
}

func seedReply(t *testing.T, db *gorm.DB, id, commentID, userID string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Reply{
		ID: id, CommentID: commentID, UserID: userID, Content: "isi " + id, CreatedAt: at,
	}).Error)
}
