package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDefaultCredentials(t *testing.T) {
	c := DefaultCredentials(bcrypt.MinCost)
	assert.Equal(t, []string{"admin", "user"}, c.Usernames())

	id, ok := c.Authenticate("admin", "admin123")
	require.True(t, ok)
	assert.True(t, id.IsAdmin())

	id, ok = c.Authenticate("user", "user123")
	require.True(t, ok)
	assert.Equal(t, Identity{Username: "user", Role: RoleCustomer}, id)

	_, ok = c.Authenticate("user", "admin123")
	assert.False(t, ok)
	_, ok = c.Authenticate("nobody", "x")
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	c := DefaultCredentials(bcrypt.MinCost)
	id, err := c.Register("carol", "secret1")
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, id.Role)

	got, ok := c.Authenticate("carol", "secret1")
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, err = c.Register("admin", "whatever")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("admin", "pw"))

	err := ValidateLogin(" ", "")
	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Username is required", fe["username"])
	assert.Equal(t, "Password is required", fe["password"])
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("carol", "secret1", "secret1"))

	err := ValidateRegistration("al", "123", "124")
	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Len(t, fe, 3)
	assert.Contains(t, fe["confirm"], "do not match")
	assert.Equal(t, "confirm: Passwords do not match; password: Password must be at least 6 characters; username: Username must be at least 3 characters", fe.Error())
}

func TestValidateRegistrationPasswordBytes(t *testing.T) {
	assert.NoError(t, ValidateRegistration("carol", strings.Repeat("p", MaxPasswordBytes), strings.Repeat("p", MaxPasswordBytes)))

	for _, pw := range []string{
		strings.Repeat("p", MaxPasswordBytes+1),
		strings.Repeat("é", 40), // 40 runes, 80 bytes
	} {
		err := ValidateRegistration("carol", pw, pw)
		var fe FieldErrors
		require.True(t, errors.As(err, &fe), pw)
		assert.Equal(t, map[string]string{"password": "Password must be at most 72 bytes"}, map[string]string(fe))
	}
}

func TestRegisterLongestPassword(t *testing.T) {
	c := NewCredentials(bcrypt.MinCost)
	pw := strings.Repeat("p", MaxPasswordBytes)
	_, err := c.Register("carol", pw)
	require.NoError(t, err)
	_, ok := c.Authenticate("carol", pw)
	assert.True(t, ok)
}
