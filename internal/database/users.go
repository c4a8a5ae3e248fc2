package database

import (
	"context"

	"thesis-portal/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, wrapNotFound(err, "find user by username")
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, wrapNotFound(err, "find user by id")
}

// gorm.ErrRecordNotFound превращаем в models.ErrNotFound, остальное просто оборачиваем
func wrapNotFound(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(models.ErrNotFound, msg)
	}
	return errors.Wrap(err, msg)
}
