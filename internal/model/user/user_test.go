package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthorities(t *testing.T) {
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, ParseAuthorities("ROLE_ADMIN,ROLE_USER"))
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, ParseAuthorities(" ROLE_ADMIN , ROLE_USER ,"))
	assert.Empty(t, ParseAuthorities(""))
}

func TestUser_HasAuthority(t *testing.T) {
	u := User{Authorities: "ROLE_ADMIN,ROLE_USER"}
	assert.True(t, u.HasAuthority(RoleAdmin))
	assert.True(t, u.HasAuthority(RoleUser))

	u = User{Authorities: "ROLE_USER"}
	assert.False(t, u.HasAuthority(RoleAdmin))
}
