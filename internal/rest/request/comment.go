package request

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

// Content is the body of both comment and reply creation.
type Content struct {
	Content string `json:"content"`
}

func (r *Content) ToCommentPayload(threadID, userID string) domain.AddCommentPayload {
	return domain.AddCommentPayload{
		ThreadID: threadID,
		Content:  sanitize(r.Content),
		UserID:   userID,
	}
}

func (r *Content) ToReplyPayload(threadID, commentID, userID string) domain.AddReplyPayload {
	return domain.AddReplyPayload{
		ThreadID:  threadID,
		CommentID: commentID,
		Content:   sanitize(r.Content),
		UserID:    userID,
	}
}
