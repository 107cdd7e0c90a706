package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOf(t *testing.T) {
	assert.Equal(t, 0, RankOf(RoleFreelancer))
	assert.Equal(t, 0, RankOf(RoleEmployer))
	assert.Equal(t, 1, RankOf(RoleSupport))
	assert.Equal(t, 2, RankOf(RoleManager))
	assert.Equal(t, 3, RankOf(RoleAdmin))
	assert.Equal(t, -1, RankOf("superuser"))
	assert.Equal(t, -1, RankOf(""))
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		role string
		min  string
		want bool
	}{
		{RoleAdmin, RoleManager, true},
		{RoleManager, RoleManager, true},
		{RoleSupport, RoleManager, false},
		{RoleFreelancer, RoleSupport, false},
		{RoleEmployer, RoleFreelancer, true}, // одинаковый ранг
		{"unknown", RoleFreelancer, false},
		{RoleAdmin, "unknown", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AtLeast(tt.role, tt.min), "AtLeast(%s, %s)", tt.role, tt.min)
	}
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(RoleSupport))
	assert.True(t, IsStaff(RoleManager))
	assert.True(t, IsStaff(RoleAdmin))
	assert.False(t, IsStaff(RoleFreelancer))
	assert.False(t, IsStaff(RoleEmployer))
}

func TestAssignableByManager(t *testing.T) {
	assert.True(t, AssignableByManager(RoleFreelancer))
	assert.True(t, AssignableByManager(RoleEmployer))
	assert.True(t, AssignableByManager(RoleSupport))
	assert.False(t, AssignableByManager(RoleManager))
	assert.False(t, AssignableByManager(RoleAdmin))
}

func TestRegistrableRole(t *testing.T) {
	assert.True(t, RegistrableRole(RoleFreelancer))
	assert.True(t, RegistrableRole(RoleEmployer))
	assert.False(t, RegistrableRole(RoleSupport))
	assert.False(t, RegistrableRole(RoleAdmin))
}
