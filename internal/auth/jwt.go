package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const claimUserID = "id"

type tokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

var _ domain.TokenManager = (*tokenManager)(nil)

// NewTokenManager signs access and refresh tokens with HS256 using separate keys.
func NewTokenManager(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *tokenManager {
	return &tokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (t *tokenManager) CreateAccessToken(userID string) (string, error) {
	return sign(t.accessKey, userID, t.accessTTL)
}

func (t *tokenManager) CreateRefreshToken(userID string) (string, error) {
	return sign(t.refreshKey, userID, t.refreshTTL)
}

func (t *tokenManager) VerifyAccessToken(token string) (string, error) {
	userID, err := verify(t.accessKey, token)
	if err != nil {
		logrus.Debugf("rejected access token: %v", err)
		return "", domain.ErrMissingAuthentication
	}
	return userID, nil
}

func (t *tokenManager) VerifyRefreshToken(token string) (string, error) {
	userID, err := verify(t.refreshKey, token)
	if err != nil {
		logrus.Debugf("rejected refresh token: %v", err)
		return "", domain.ErrRefreshTokenInvalid
	}
	return userID, nil
}

func sign(key []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		claimUserID: userID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func verify(key []byte, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	userID, ok := claims[claimUserID].(string)
	if !ok || userID == "" {
		return "", errors.New("token carries no user id")
	}
	return userID, nil
}
