package models

import "time"

// Session — запись об аутентифицированной сессии. ID лежит в cookie.
type Session struct {
	ID     string `gorm:"primaryKey;size:36"`
	UserID uint   `gorm:"index;not null"`
	User   User

	IsAuth    bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
}

// имя таблицы фиксировано
func (Session) TableName() string {
	return "sessions"
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
