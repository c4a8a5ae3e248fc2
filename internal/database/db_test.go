package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"thesis-portal/internal/models"
)

func TestWrapNotFound(t *testing.T) {
	assert.NoError(t, wrapNotFound(nil, "noop"))

	err := wrapNotFound(gorm.ErrRecordNotFound, "find session")
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.Equal(t, "find session: record not found", err.Error())

	other := errors.New("connection reset")
	err = wrapNotFound(other, "find user by id")
	assert.True(t, errors.Is(err, other))
	assert.False(t, errors.Is(err, models.ErrNotFound))
}

func TestDefaultSeedUsers(t *testing.T) {
	t.Setenv("STUDENT_USERNAME", "s1234@upatras.gr")

	users := defaultSeedUsers()
	assert.Len(t, users, 3)

	roles := map[models.Role]string{}
	for _, u := range users {
		roles[u.Role] = u.Username
		assert.NotEmpty(t, u.Password)
	}
	assert.Equal(t, "professor@thesis.local", roles[models.RoleProfessor])
	assert.Equal(t, "s1234@upatras.gr", roles[models.RoleStudent])
	assert.Equal(t, "secretary@thesis.local", roles[models.RoleSecretary])
}
