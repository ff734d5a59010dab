package authentication

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	userRepo domain.UserRepository
	authRepo domain.AuthenticationRepository
	tokens   domain.TokenManager
	hasher   domain.PasswordHasher
}

var _ domain.AuthenticationUsecase = (*service)(nil)

func NewService(u domain.UserRepository, a domain.AuthenticationRepository, t domain.TokenManager, h domain.PasswordHasher) *service {
	return &service{
		userRepo: u,
		authRepo: a,
		tokens:   t,
		hasher:   h,
	}
}

// Login issues a token pair and stores the refresh token.
func (s *service) Login(ctx context.Context, p domain.LoginPayload) (domain.NewAuth, error) {
	if err := p.Validate(); err != nil {
		return domain.NewAuth{}, err
	}

	user, err := s.userRepo.GetByUsername(ctx, p.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}
	if err := s.hasher.Compare(p.Password, user.Password); err != nil {
		return domain.NewAuth{}, err
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return domain.NewAuth{}, err
	}
	refreshToken, err := s.tokens.CreateRefreshToken(user.ID)
	if err != nil {
		return domain.NewAuth{}, err
	}
	if err := s.authRepo.AddToken(ctx, refreshToken); err != nil {
		return domain.NewAuth{}, err
	}

	return domain.NewAuth{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh returns a new access token for a stored, correctly signed refresh token.
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrRefreshTokenMissing
	}
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	if err := s.authRepo.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}
	return s.tokens.CreateAccessToken(userID)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrRefreshTokenMissing
	}
	if err := s.authRepo.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return s.authRepo.DeleteToken(ctx, refreshToken)
}
