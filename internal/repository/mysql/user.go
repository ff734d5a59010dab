package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type userRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, gen repository.IDGenerator) *userRepository {
	return &userRepository{
		DB:    db,
		newID: gen,
	}
}

func (m *userRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrUsernameUnavailable
	}
	return nil
}

func (m *userRepository) AddUser(ctx context.Context, u domain.User) (domain.RegisteredUser, error) {
	u.ID = repository.NewID("user", m.newID)
	userModel := model.NewUserFromDomain(u)

	err := m.DB.WithContext(ctx).Create(userModel).Error
	if isDuplicateKey(err) {
		return domain.RegisteredUser{}, domain.ErrUsernameUnavailable
	}
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	return domain.RegisteredUser{
		ID:       userModel.ID,
		Username: userModel.Username,
		Fullname: userModel.Fullname,
	}, nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}
