package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the user is not allowed to touch the resource
	ErrForbidden = errors.New("you are not allowed to do this")
	// ErrUnauthorized will throw if the credential is missing or invalid
	ErrUnauthorized = errors.New("authentication required")
)

// Error is a client facing error. Kind is one of the sentinel errors above and decides
// the status code, Message is what the client reads.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Not found
var (
	ErrThreadNotFound  = newError(ErrNotFound, "thread tidak ditemukan")
	ErrCommentNotFound = newError(ErrNotFound, "comment tidak ditemukan")
	ErrReplyNotFound   = newError(ErrNotFound, "reply tidak ditemukan")
	ErrUserNotFound    = newError(ErrBadParamInput, "username tidak ditemukan")
)

// Ownership
var (
	ErrCommentNotOwned = newError(ErrForbidden, "anda tidak dapat menghapus komentar yang tidak anda buat")
	ErrReplyNotOwned   = newError(ErrForbidden, "anda tidak dapat menghapus reply yang tidak anda buat")
)

// Thread payloads
var (
	ErrAddThreadMissingProperty = newError(ErrBadParamInput, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada")
	ErrAddThreadDataType        = newError(ErrBadParamInput, "tidak dapat membuat thread baru karena tipe data tidak sesuai")
	ErrThreadTitleLimit         = newError(ErrBadParamInput, "tidak dapat membuat thread baru karena karakter title melebihi batas limit")
)

// Comment payloads
var (
	ErrAddCommentMissingProperty    = newError(ErrBadParamInput, "tidak dapat membuat comment baru karena properti yang dibutuhkan tidak ada")
	ErrAddCommentDataType           = newError(ErrBadParamInput, "tidak dapat membuat comment baru karena tipe data tidak sesuai")
	ErrDeleteCommentMissingProperty = newError(ErrBadParamInput, "tidak dapat menghapus comment karena properti yang dibutuhkan tidak ada")
)

// Reply payloads
var (
	ErrAddReplyMissingProperty    = newError(ErrBadParamInput, "tidak dapat membuat reply baru karena properti yang dibutuhkan tidak ada")
	ErrAddReplyDataType           = newError(ErrBadParamInput, "tidak dapat membuat reply baru karena tipe data tidak sesuai")
	ErrDeleteReplyMissingProperty = newError(ErrBadParamInput, "tidak dapat menghapus reply karena properti yang dibutuhkan tidak ada")
)

// Like payloads
var (
	ErrToggleLikeMissingProperty = newError(ErrBadParamInput, "tidak dapat menyukai comment karena properti yang dibutuhkan tidak ada")
	ErrLikeConflict              = newError(ErrConflict, "comment sudah disukai")
)

// User and authentication payloads
var (
	ErrRegisterUserMissingProperty = newError(ErrBadParamInput, "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada")
	ErrRegisterUserDataType        = newError(ErrBadParamInput, "tidak dapat membuat user baru karena tipe data tidak sesuai")
	ErrUsernameLimit               = newError(ErrBadParamInput, "tidak dapat membuat user baru karena karakter username melebihi batas limit")
	ErrUsernameRestrictedCharacter = newError(ErrBadParamInput, "tidak dapat membuat user baru karena username mengandung karakter terlarang")
	ErrUsernameUnavailable         = newError(ErrBadParamInput, "username tidak tersedia")

	ErrLoginMissingProperty = newError(ErrBadParamInput, "harus mengirimkan username dan password")
	ErrLoginDataType        = newError(ErrBadParamInput, "username dan password harus string")
	ErrWrongCredential      = newError(ErrUnauthorized, "kredensial yang Anda masukkan salah")

	ErrRefreshTokenMissing  = newError(ErrBadParamInput, "harus mengirimkan token refresh")
	ErrRefreshTokenDataType = newError(ErrBadParamInput, "refresh token harus string")
	ErrRefreshTokenInvalid  = newError(ErrBadParamInput, "refresh token tidak valid")
	ErrRefreshTokenNotFound = newError(ErrBadParamInput, "refresh token tidak ditemukan di database")

	ErrMissingAuthentication = newError(ErrUnauthorized, "Missing authentication")
)
