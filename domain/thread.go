package domain

import (
	"context"
	"unicode/utf8"
)

// ThreadTitleMaxLength is the longest title a thread may carry.
const ThreadTitleMaxLength = 50

// ThreadDraft is a thread that has not been persisted yet.
type ThreadDraft struct {
	Title  string `validate:"required"`
	Body   string `validate:"required"`
	UserID string `validate:"required"`
}

// NewThreadDraft validates the fields and builds a ThreadDraft. The title limit is
// checked here so an oversized title never reaches the repository.
func NewThreadDraft(title, body, userID string) (ThreadDraft, error) {
	d := ThreadDraft{Title: title, Body: body, UserID: userID}
	if err := checkRequired(d, ErrAddThreadMissingProperty); err != nil {
		return ThreadDraft{}, err
	}
	if utf8.RuneCountInString(title) > ThreadTitleMaxLength {
		return ThreadDraft{}, ErrThreadTitleLimit
	}
	return d, nil
}

// Thread is the thread as reported back by persistence.
type Thread struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	Owner string `json:"owner" validate:"required"`
}

// NewThread builds a Thread, failing when any field is empty.
func NewThread(id, title, body, owner string) (Thread, error) {
	t := Thread{ID: id, Title: title, Body: body, Owner: owner}
	if err := checkRequired(t, ErrAddThreadMissingProperty); err != nil {
		return Thread{}, err
	}
	return t, nil
}

// DetailThread is the read projection of a thread with its comments.
type DetailThread struct {
	ID       string          `json:"id" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Body     string          `json:"body" validate:"required"`
	Date     string          `json:"date" validate:"required"`
	Username string          `json:"username" validate:"required"`
	Comments []DetailComment `json:"comments"`
}

// NewDetailThread builds a DetailThread. A nil comments slice becomes an empty one so
// the projection always exposes an array.
func NewDetailThread(id, title, body, date, username string, comments []DetailComment) (DetailThread, error) {
	if comments == nil {
		comments = []DetailComment{}
	}
	t := DetailThread{
		ID:       id,
		Title:    title,
		Body:     body,
		Date:     date,
		Username: username,
		Comments: comments,
	}
	if err := checkRequired(t, ErrInternalServerError); err != nil {
		return DetailThread{}, err
	}
	return t, nil
}

// AddThreadPayload is the input of ThreadUsecase.AddThread
type AddThreadPayload struct {
	Title  string
	Body   string
	UserID string
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// AddThread persists the draft and returns the stored thread with its generated id.
	AddThread(ctx context.Context, draft ThreadDraft) (Thread, error)

	// VerifyThreadID returns ErrThreadNotFound if the thread does not exist.
	VerifyThreadID(ctx context.Context, id string) error

	// GetThreadDetail returns the thread's base projection with an empty comment list.
	// Returns ErrThreadNotFound if the thread does not exist.
	GetThreadDetail(ctx context.Context, id string) (DetailThread, error)
}

// ThreadUsecase represents the thread use cases.
type ThreadUsecase interface {
	AddThread(ctx context.Context, payload AddThreadPayload) (Thread, error)
	ViewThread(ctx context.Context, threadID string) (DetailThread, error)
}
