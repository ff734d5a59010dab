package domain

import "context"

// DeletedReplyContent replaces the content of a soft deleted reply.
const DeletedReplyContent = "**balasan telah dihapus**"

// ReplyDraft is a reply that has not been persisted yet.
type ReplyDraft struct {
	CommentID string `validate:"required"`
	Content   string `validate:"required"`
	UserID    string `validate:"required"`
}

// NewReplyDraft builds a ReplyDraft, failing when any field is empty.
func NewReplyDraft(commentID, content, userID string) (ReplyDraft, error) {
	d := ReplyDraft{CommentID: commentID, Content: content, UserID: userID}
	if err := checkRequired(d, ErrAddReplyMissingProperty); err != nil {
		return ReplyDraft{}, err
	}
	return d, nil
}

// Reply is the reply as reported back by persistence.
type Reply struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
	Owner   string `json:"owner" validate:"required"`
}

// NewReply builds a Reply, failing when any field is empty.
func NewReply(id, content, owner string) (Reply, error) {
	r := Reply{ID: id, Content: content, Owner: owner}
	if err := checkRequired(r, ErrAddReplyMissingProperty); err != nil {
		return Reply{}, err
	}
	return r, nil
}

// ReplyRecord is a reply row as fetched for a comment, tombstone flag included.
type ReplyRecord struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

// DetailReply is the presentation of a reply inside a DetailComment.
type DetailReply struct {
	ID       string `json:"id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// NewDetailReply maps a fetched record to its presentation, redacting deleted replies.
func NewDetailReply(rec ReplyRecord) (DetailReply, error) {
	content := rec.Content
	if rec.IsDeleted {
		content = DeletedReplyContent
	}
	r := DetailReply{
		ID:       rec.ID,
		Username: rec.Username,
		Date:     rec.Date,
		Content:  content,
	}
	if err := checkRequired(r, ErrInternalServerError); err != nil {
		return DetailReply{}, err
	}
	return r, nil
}

// AddReplyPayload is the input of ReplyUsecase.AddReply
type AddReplyPayload struct {
	ThreadID  string
	CommentID string
	Content   string
	UserID    string
}

// DeleteReplyPayload is the input of ReplyUsecase.DeleteReply
type DeleteReplyPayload struct {
	ThreadID  string `validate:"required"`
	CommentID string `validate:"required"`
	ReplyID   string `validate:"required"`
	UserID    string `validate:"required"`
}

func (p DeleteReplyPayload) Validate() error {
	return checkRequired(p, ErrDeleteReplyMissingProperty)
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	AddReply(ctx context.Context, draft ReplyDraft) (Reply, error)

	// VerifyReplyID returns ErrReplyNotFound if the reply does not exist.
	VerifyReplyID(ctx context.Context, id string) error

	// VerifyOwner returns ErrReplyNotFound if the reply does not exist and
	// ErrReplyNotOwned if userID did not write it.
	VerifyOwner(ctx context.Context, replyID, userID string) error

	// DeleteReply soft deletes the reply.
	DeleteReply(ctx context.Context, id string) error

	// GetRepliesByCommentID returns the comment's replies, oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRecord, error)
}

// ReplyUsecase represents the reply use cases.
type ReplyUsecase interface {
	AddReply(ctx context.Context, payload AddReplyPayload) (Reply, error)
	DeleteReply(ctx context.Context, payload DeleteReplyPayload) error
}
