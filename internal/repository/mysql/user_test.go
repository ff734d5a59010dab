package mysql_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := mysqlRepo.NewUserRepository(db, fixedIDs("123", "456"))
	fullname := faker.Name()

	require.NoError(t, repo.VerifyAvailableUsername(context.TODO(), "dicoding"))

	registered, err := repo.AddUser(context.TODO(), domain.User{Username: "dicoding", Password: "hashed", Fullname: fullname})
	require.NoError(t, err)
	assert.Equal(t, domain.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: fullname}, registered)

	assert.ErrorIs(t, repo.VerifyAvailableUsername(context.TODO(), "dicoding"), domain.ErrUsernameUnavailable)

	_, err = repo.AddUser(context.TODO(), domain.User{Username: "dicoding", Password: "x", Fullname: "y"})
	assert.ErrorIs(t, err, domain.ErrUsernameUnavailable)

	user, err := repo.GetByUsername(context.TODO(), "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "hashed", user.Password)

	_, err = repo.GetByUsername(context.TODO(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
