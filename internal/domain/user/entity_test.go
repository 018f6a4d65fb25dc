//go:build unit

package user_test

import (
	"testing"

	"commerce-order-core/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "buyer@example.com", want: "buyer@example.com"},
		{name: "trimmed", input: "  buyer@example.com ", want: "buyer@example.com"},
		{name: "missing domain", input: "buyer@", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewUser(t *testing.T) {
	id := uuid.New()
	email, err := user.NewEmail("a@example.com")
	require.NoError(t, err)

	u := user.NewUser(id, email, "Alice")

	assert.Equal(t, id, u.ID())
	assert.Equal(t, "a@example.com", u.Email().Value())
	assert.Equal(t, "Alice", u.Name())
}
