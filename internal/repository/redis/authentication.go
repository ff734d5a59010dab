package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const (
	KeyRefreshToken = "auth:refresh:%s"
)

type authenticationRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.AuthenticationRepository = (*authenticationRepository)(nil)

// NewAuthenticationRepository stores refresh tokens for ttl, which should match the
// refresh token lifetime.
func NewAuthenticationRepository(client *redis.Client, ttl time.Duration) *authenticationRepository {
	return &authenticationRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *authenticationRepository) AddToken(ctx context.Context, token string) error {
	return r.client.Set(ctx, refreshTokenKey(token), 1, r.ttl).Err()
}

func (r *authenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	n, err := r.client.Exists(ctx, refreshTokenKey(token)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRefreshTokenNotFound
	}
	return nil
}

func (r *authenticationRepository) DeleteToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, refreshTokenKey(token)).Err()
}

func refreshTokenKey(token string) string {
	return fmt.Sprintf(KeyRefreshToken, token)
}
