package user

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, hasher domain.PasswordHasher) *service {
	return &service{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *service) Register(ctx context.Context, p domain.RegisterUserPayload) (domain.RegisteredUser, error) {
	if err := p.Validate(); err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := s.userRepo.VerifyAvailableUsername(ctx, p.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hashed, err := s.hasher.Hash(p.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	return s.userRepo.AddUser(ctx, domain.User{
		Username: p.Username,
		Password: hashed,
		Fullname: p.Fullname,
	})
}
