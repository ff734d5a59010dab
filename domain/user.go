package domain

import (
	"context"
	"regexp"
	"unicode/utf8"
)

// UsernameMaxLength is the longest username a user may register.
const UsernameMaxLength = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

// User represents a registered forum user.
type User struct {
	ID       string // Unique identifier, prefixed "user-"
	Username string // Login username (unique)
	Password string // Bcrypt hashed password
	Fullname string // Display name
}

// RegisterUserPayload is the input of UserUsecase.Register
type RegisterUserPayload struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Fullname string `validate:"required"`
}

// Validate checks presence, the username length and the username character set.
func (p RegisterUserPayload) Validate() error {
	if err := checkRequired(p, ErrRegisterUserMissingProperty); err != nil {
		return err
	}
	if utf8.RuneCountInString(p.Username) > UsernameMaxLength {
		return ErrUsernameLimit
	}
	if !usernamePattern.MatchString(p.Username) {
		return ErrUsernameRestrictedCharacter
	}
	return nil
}

// RegisteredUser is what a registration reports back.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// VerifyAvailableUsername returns ErrUsernameUnavailable if the username is taken.
	VerifyAvailableUsername(ctx context.Context, username string) error

	// AddUser stores the user, whose Password must already be hashed.
	AddUser(ctx context.Context, u User) (RegisteredUser, error)

	// GetByUsername returns ErrUserNotFound if no user has the username.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrWrongCredential when password does not match hashed.
	Compare(password, hashed string) error
}

// UserUsecase defines the business logic contract for user registration.
type UserUsecase interface {
	Register(ctx context.Context, payload RegisterUserPayload) (RegisteredUser, error)
}
