package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/DrinkCatalog/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	AddUser(ctx context.Context, name string, email string, isAdmin bool) (*model.User, error)
}

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("uuid = ?", uuid).First(&user)
	if result.Error != nil {
		return nil, userLookupError(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, userLookupError(result.Error)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, name string, email string, isAdmin bool) (*model.User, error) {
	user := model.User{
		UUID:     uuid.New(),
		Username: name,
		Email:    email,
		IsAdmin:  isAdmin,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}

	return err
}
