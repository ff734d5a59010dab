package domain

import "context"

// DeletedCommentContent replaces the content of a soft deleted comment.
const DeletedCommentContent = "**komentar telah dihapus**"

// CommentDraft is a comment that has not been persisted yet.
type CommentDraft struct {
	ThreadID string `validate:"required"`
	Content  string `validate:"required"`
	UserID   string `validate:"required"`
}

// NewCommentDraft builds a CommentDraft, failing when any field is empty.
func NewCommentDraft(threadID, content, userID string) (CommentDraft, error) {
	d := CommentDraft{ThreadID: threadID, Content: content, UserID: userID}
	if err := checkRequired(d, ErrAddCommentMissingProperty); err != nil {
		return CommentDraft{}, err
	}
	return d, nil
}

// Comment is the comment as reported back by persistence.
type Comment struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
	Owner   string `json:"owner" validate:"required"`
}

// NewComment builds a Comment, failing when any field is empty.
func NewComment(id, content, owner string) (Comment, error) {
	c := Comment{ID: id, Content: content, Owner: owner}
	if err := checkRequired(c, ErrAddCommentMissingProperty); err != nil {
		return Comment{}, err
	}
	return c, nil
}

// CommentRecord is a comment row as fetched for a thread. It still carries the
// tombstone flag and the original content and must never leave the use case layer.
type CommentRecord struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
	LikeCount int64
}

// DetailComment is the presentation of a comment inside a DetailThread.
type DetailComment struct {
	ID        string        `json:"id" validate:"required"`
	Username  string        `json:"username" validate:"required"`
	Date      string        `json:"date" validate:"required"`
	Content   string        `json:"content" validate:"required"`
	LikeCount int64         `json:"likeCount" validate:"gte=0"`
	Replies   []DetailReply `json:"replies"`
}

// NewDetailComment maps a fetched record to its presentation. Deleted comments expose
// DeletedCommentContent instead of their content.
func NewDetailComment(rec CommentRecord, replies []DetailReply) (DetailComment, error) {
	content := rec.Content
	if rec.IsDeleted {
		content = DeletedCommentContent
	}
	if replies == nil {
		replies = []DetailReply{}
	}
	c := DetailComment{
		ID:        rec.ID,
		Username:  rec.Username,
		Date:      rec.Date,
		Content:   content,
		LikeCount: rec.LikeCount,
		Replies:   replies,
	}
	if err := checkRequired(c, ErrInternalServerError); err != nil {
		return DetailComment{}, err
	}
	return c, nil
}

// AddCommentPayload is the input of CommentUsecase.AddComment
type AddCommentPayload struct {
	ThreadID string
	Content  string
	UserID   string
}

// DeleteCommentPayload is the input of CommentUsecase.DeleteComment
type DeleteCommentPayload struct {
	ThreadID  string `validate:"required"`
	CommentID string `validate:"required"`
	UserID    string `validate:"required"`
}

func (p DeleteCommentPayload) Validate() error {
	return checkRequired(p, ErrDeleteCommentMissingProperty)
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	AddComment(ctx context.Context, draft CommentDraft) (Comment, error)

	// VerifyCommentID returns ErrCommentNotFound if the comment does not exist.
	VerifyCommentID(ctx context.Context, id string) error

	// VerifyOwner returns ErrCommentNotFound if the comment does not exist and
	// ErrCommentNotOwned if userID did not write it.
	VerifyOwner(ctx context.Context, commentID, userID string) error

	// DeleteComment soft deletes the comment.
	DeleteComment(ctx context.Context, id string) error

	// GetCommentsByThreadID returns the thread's comments ordered by creation time,
	// oldest first, with their like counts.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRecord, error)
}

// CommentUsecase represents the comment use cases.
type CommentUsecase interface {
	AddComment(ctx context.Context, payload AddCommentPayload) (Comment, error)
	DeleteComment(ctx context.Context, payload DeleteCommentPayload) error
}
