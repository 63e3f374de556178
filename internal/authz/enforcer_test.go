package authz

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcer_EmbeddedPolicy(t *testing.T) {
	e, err := NewEnforcer("")
	require.NoError(t, err)

	user := []string{"ROLE_USER"}
	admin := []string{"ROLE_ADMIN", "ROLE_USER"}
	adminOnly := []string{"ROLE_ADMIN"}

	tests := []struct {
		name        string
		authorities []string
		method      string
		path        string
		want        bool
	}{
		{"user reads one", user, http.MethodGet, "/animes/1", true},
		{"user cannot list", user, http.MethodGet, "/animes", false},
		{"user cannot create", user, http.MethodPost, "/animes", false},
		{"user cannot batch", user, http.MethodPost, "/animes/batch", false},
		{"user cannot update", user, http.MethodPut, "/animes/1", false},
		{"user cannot delete", user, http.MethodDelete, "/animes/1", false},
		{"admin lists", admin, http.MethodGet, "/animes", true},
		{"admin lists with slash", admin, http.MethodGet, "/animes/", true},
		{"admin reads one", admin, http.MethodGet, "/animes/1", true},
		{"admin creates", admin, http.MethodPost, "/animes", true},
		{"admin batches", admin, http.MethodPost, "/animes/batch", true},
		{"admin updates", admin, http.MethodPut, "/animes/1", true},
		{"admin deletes", admin, http.MethodDelete, "/animes/1", true},
		{"admin cannot patch", admin, http.MethodPatch, "/animes/1", false},
		{"admin outside animes", admin, http.MethodGet, "/users", false},
		{"admin-only lists", adminOnly, http.MethodGet, "/animes", true},
		{"admin-only reads one", adminOnly, http.MethodGet, "/animes/1", true},
		{"admin-only deletes", adminOnly, http.MethodDelete, "/animes/1", true},
		{"no authorities", nil, http.MethodGet, "/animes/1", false},
		{"method regex is anchored", admin, "XPOSTX", "/animes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EnforceAny(tt.authorities, tt.path, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforcer_PolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.csv")
	policy := "p, ROLE_USER, /animes, ^GET$\np, ROLE_USER, /animes/*, ^GET$\n"
	require.NoError(t, os.WriteFile(path, []byte(policy), 0o600))

	e, err := NewEnforcer(path)
	require.NoError(t, err)

	allowed, err := e.EnforceAny([]string{"ROLE_USER"}, "/animes", http.MethodGet)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.EnforceAny([]string{"ROLE_ADMIN"}, "/animes", http.MethodPost)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestEnforcer_MissingPolicyFile(t *testing.T) {
	_, err := NewEnforcer(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
