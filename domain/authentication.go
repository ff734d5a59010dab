package domain

import "context"

// NewAuth is the token pair issued on login.
type NewAuth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginPayload is the input of AuthenticationUsecase.Login
type LoginPayload struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (p LoginPayload) Validate() error {
	return checkRequired(p, ErrLoginMissingProperty)
}

// AuthenticationRepository stores the refresh tokens that are still valid.
type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error

	// CheckAvailabilityToken returns ErrRefreshTokenNotFound if the token is not stored.
	CheckAvailabilityToken(ctx context.Context, token string) error

	DeleteToken(ctx context.Context, token string) error
}

// TokenManager issues and verifies access and refresh tokens. Both carry the user id.
type TokenManager interface {
	CreateAccessToken(userID string) (string, error)
	CreateRefreshToken(userID string) (string, error)

	// VerifyAccessToken returns the user id, or ErrMissingAuthentication.
	VerifyAccessToken(token string) (string, error)

	// VerifyRefreshToken returns the user id, or ErrRefreshTokenInvalid.
	VerifyRefreshToken(token string) (string, error)
}

// AuthenticationUsecase handles login, access token refresh and logout.
type AuthenticationUsecase interface {
	Login(ctx context.Context, payload LoginPayload) (NewAuth, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}
