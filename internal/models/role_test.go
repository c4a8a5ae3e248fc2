package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"professor", RoleProfessor, true},
		{"student", RoleStudent, true},
		{"secretary", RoleSecretary, true},
		{"", RoleAnonymous, false},
		{"admin", RoleAnonymous, false},
		{"Professor", RoleAnonymous, false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestRole_Landing(t *testing.T) {
	assert.Equal(t, "/professor", RoleProfessor.Landing())
	assert.Equal(t, "/student", RoleStudent.Landing())
	assert.Equal(t, "/secretary", RoleSecretary.Landing())
	assert.Equal(t, "/login", RoleAnonymous.Landing())
	assert.Equal(t, "/login", Role("dean").Landing())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAnonymous.Valid())
	assert.True(t, RoleSecretary.Valid())
	assert.False(t, Role("dean").Valid())
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
	assert.True(t, s.Expired(now.Add(time.Hour)))
}
