// Package user holds the credential record used for authentication.
package user

import "strings"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is a stored credential. Password holds an encoded hash such as
// "{bcrypt}$2a$10$..." and is never serialized.
type User struct {
	ID          int    `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Password    string `json:"-" db:"password"`
	Name        string `json:"name" db:"name"`
	Authorities string `json:"authorities" db:"authorities"`
}

// AuthorityList splits the comma-separated authorities column.
// Blank entries are dropped.
func (u *User) AuthorityList() []string {
	return ParseAuthorities(u.Authorities)
}

// HasAuthority reports whether the user carries the given authority.
func (u *User) HasAuthority(authority string) bool {
	for _, a := range u.AuthorityList() {
		if a == authority {
			return true
		}
	}
	return false
}

// ParseAuthorities turns "ROLE_ADMIN, ROLE_USER" into its trimmed parts.
func ParseAuthorities(raw string) []string {
	parts := strings.Split(raw, ",")
	authorities := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			authorities = append(authorities, p)
		}
	}
	return authorities
}

// CreateUserPayload is what the CLI collects to provision a user.
type CreateUserPayload struct {
	Username    string `validate:"required,notblank,max=100"`
	Password    string `validate:"required,min=6"`
	Name        string `validate:"required,notblank"`
	Authorities string `validate:"required,notblank"`
}
