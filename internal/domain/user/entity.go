package user

import (
	"strings"

	"github.com/google/uuid"
)

// User is read only here; accounts are managed elsewhere.
type User struct {
	id    uuid.UUID
	email Email
	name  string
}

func NewUser(id uuid.UUID, email Email, name string) *User {
	return &User{
		id:    id,
		email: email,
		name:  strings.TrimSpace(name),
	}
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Email() Email  { return u.email }
func (u *User) Name() string  { return u.name }
