package auth

import (
	"errors"
	"log"

	"thesis-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionKey — ключ, под которым в cookie-сессии хранится ID записи Session.
const SessionKey = "session_id"

// RoleResolver определяет роль вызывающего. Остальной роутинг не знает,
// как именно установлена личность.
type RoleResolver interface {
	Resolve(c *gin.Context) models.Role
}

type ResolverFunc func(c *gin.Context) models.Role

func (f ResolverFunc) Resolve(c *gin.Context) models.Role {
	return f(c)
}

// Static — заглушка: одна и та же роль на каждый запрос.
func Static(role models.Role) RoleResolver {
	return ResolverFunc(func(*gin.Context) models.Role {
		return role
	})
}

// SessionResolver берёт роль у владельца сессии из cookie.
type SessionResolver struct {
	Service *Service
}

func (r SessionResolver) Resolve(c *gin.Context) models.Role {
	sess := sessions.Default(c)
	id, _ := sess.Get(SessionKey).(string)
	if id == "" {
		return models.RoleAnonymous
	}

	user, err := r.Service.Validate(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
			log.Printf("failed to validate session: %v", err)
		}
		sess.Delete(SessionKey)
		_ = sess.Save()
		return models.RoleAnonymous
	}

	role, ok := models.ParseRole(string(user.Role))
	if !ok {
		return models.RoleAnonymous
	}
	return role
}
