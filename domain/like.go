package domain

import "context"

// Like is the existence record of a user liking a comment. At most one exists per
// (UserID, CommentID).
type Like struct {
	CommentID string
	UserID    string
}

// ToggleLikePayload is the input of LikeUsecase.ToggleLike
type ToggleLikePayload struct {
	ThreadID  string `validate:"required"`
	CommentID string `validate:"required"`
	UserID    string `validate:"required"`
}

func (p ToggleLikePayload) Validate() error {
	return checkRequired(p, ErrToggleLikeMissingProperty)
}

// LikeRepository defines the contract for like persistence.
type LikeRepository interface {
	IsExist(ctx context.Context, like Like) (bool, error)

	// AddLike returns ErrLikeConflict when the like is already recorded.
	AddLike(ctx context.Context, like Like) error

	// DeleteLike removes the like; deleting a missing like is not an error.
	DeleteLike(ctx context.Context, like Like) error
}

// LikeUsecase represents the like use cases.
type LikeUsecase interface {
	// ToggleLike likes the comment if the user has not liked it yet and unlikes it otherwise.
	ToggleLike(ctx context.Context, payload ToggleLikePayload) error
}
