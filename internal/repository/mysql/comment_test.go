package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
)

func TestAddComment(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-123", "dicoding")
	seedThread(t, db, "thread-123", "user-123")
	repo := mysqlRepo.NewCommentRepository(db, fixedIDs("123"))

	got, err := repo.AddComment(context.TODO(), domain.CommentDraft{
		ThreadID: "thread-123", Content: "sebuah comment", UserID: "user-123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Comment{ID: "comment-123", Content: "sebuah comment", Owner: "user-123"}, got)
	assert.NoError(t, repo.VerifyCommentID(context.TODO(), "comment-123"))
}

func TestCommentVerifyOwner(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-123", "dicoding")
	seedThread(t, db, "thread-123", "user-123")
	seedComment(t, db, "comment-123", "thread-123", "user-123", baseTime)
	repo := mysqlRepo.NewCommentRepository(db, nil)

	assert.NoError(t, repo.VerifyOwner(context.TODO(), "comment-123", "user-123"))
	assert.ErrorIs(t, repo.VerifyOwner(context.TODO(), "comment-123", "user-456"), domain.ErrCommentNotOwned)
	assert.ErrorIs(t, repo.VerifyOwner(context.TODO(), "comment-xxx", "user-123"), domain.ErrCommentNotFound)
	assert.ErrorIs(t, repo.VerifyCommentID(context.TODO(), "comment-xxx"), domain.ErrCommentNotFound)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-123", "dicoding")
	seedThread(t, db, "thread-123", "user-123")
	seedComment(t, db, "comment-123", "thread-123", "user-123", baseTime)
	repo := mysqlRepo.NewCommentRepository(db, nil)

	require.NoError(t, repo.DeleteComment(context.TODO(), "comment-123"))

	// soft deleted rows remain addressable and deleting again is harmless
	assert.NoError(t, repo.VerifyCommentID(context.TODO(), "comment-123"))
	assert.NoError(t, repo.DeleteComment(context.TODO(), "comment-123"))
	assert.ErrorIs(t, repo.DeleteComment(context.TODO(), "comment-xxx"), domain.ErrCommentNotFound)

	records, err := repo.GetCommentsByThreadID(context.TODO(), "thread-123")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsDeleted)
	assert.Equal(t, "isi comment-123", records[0].Content)
}

func TestGetCommentsByThreadID(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-123", "dicoding")
	seedUser(t, db, "user-456", "johndoe")
	seedThread(t, db, "thread-123", "user-123")
	seedThread(t, db, "thread-456", "user-123")

	later := baseTime.Add(time.Minute)
	seedComment(t, db, "comment-b", "thread-123", "user-456", later)
	seedComment(t, db, "comment-a", "thread-123", "user-123", later)
	seedComment(t, db, "comment-first", "thread-123", "user-123", baseTime)
	seedComment(t, db, "comment-other", "thread-456", "user-123", baseTime)

	likes := mysqlRepo.NewLikeRepository(db)
	require.NoError(t, likes.AddLike(context.TODO(), domain.Like{CommentID: "comment-b", UserID: "user-123"}))
	require.NoError(t, likes.AddLike(context.TODO(), domain.Like{CommentID: "comment-b", UserID: "user-456"}))

	repo := mysqlRepo.NewCommentRepository(db, nil)
	records, err := repo.GetCommentsByThreadID(context.TODO(), "thread-123")

	require.NoError(t, err)
	require.Len(t, records, 3)

	// oldest first, equal timestamps in insertion order
	assert.Equal(t, "comment-first", records[0].ID)
	assert.Equal(t, "comment-b", records[1].ID)
	assert.Equal(t, "comment-a", records[2].ID)

	assert.Equal(t, "johndoe", records[1].Username)
	assert.Equal(t, int64(2), records[1].LikeCount)
	assert.Equal(t, int64(0), records[0].LikeCount)
	assert.Equal(t, "2021-08-08T07:19:09.775Z", records[0].Date)
}

func TestGetCommentsByThreadID_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := mysqlRepo.NewCommentRepository(db, nil)

	records, err := repo.GetCommentsByThreadID(context.TODO(), "thread-123")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
