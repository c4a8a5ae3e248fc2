package database

import (
	"context"
	"time"

	"thesis-portal/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, s *models.Session) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(s).Error, "create session")
}

func (r *SessionRepo) Find(ctx context.Context, id string) (models.Session, error) {
	var s models.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, wrapNotFound(err, "find session")
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete session")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(models.ErrNotFound, "delete session")
	}
	return nil
}

// DeleteExpired чистит просроченные записи, возвращает сколько удалено.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "delete expired sessions")
	}
	return res.RowsAffected, nil
}
