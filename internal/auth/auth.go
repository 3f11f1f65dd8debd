// Package auth provides the mock identity layer: a credential table behind the
// Authenticator interface, plus login and registration form checks.
package auth

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role decides which navigation entries an identity sees.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Identity is the signed-in user.
type Identity struct {
	Username string
	Role     Role
}

// IsAdmin reports whether the identity may use the admin panel.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// Authenticator checks a username/password pair.
type Authenticator interface {
	Authenticate(username, password string) (Identity, bool)
}

// Registrar is implemented by authenticators that can add customers.
type Registrar interface {
	Register(username, password string) (Identity, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type account struct {
	hash []byte
	role Role
}

// Credentials is an in-memory credential table storing bcrypt hashes.
// It implements Authenticator and Registrar.
type Credentials struct {
	cost     int
	accounts map[string]account
}

// NewCredentials returns an empty table hashing with the given bcrypt cost.
// Costs below bcrypt.MinCost are raised to it.
func NewCredentials(cost int) *Credentials {
	return &Credentials{cost: max(cost, bcrypt.MinCost), accounts: make(map[string]account)}
}

// DefaultCredentials returns the demo table: admin/admin123 (admin) and user/user123 (customer).
func DefaultCredentials(cost int) *Credentials {
	c := NewCredentials(cost)
	for _, u := range []struct {
		name, pass string
		role       Role
	}{
		{"admin", "admin123", RoleAdmin},
		{"user", "user123", RoleCustomer},
	} {
		if err := c.Add(u.name, u.pass, u.role); err != nil {
			panic(err)
		}
	}
	return c
}

// Add stores a hashed password for username.
func (c *Credentials) Add(username, password string, role Role) error {
	if _, ok := c.accounts[username]; ok {
		return fmt.Errorf("%q: %w", username, ErrUsernameTaken)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	c.accounts[username] = account{hash: hash, role: role}
	return nil
}

// Authenticate implements Authenticator.
func (c *Credentials) Authenticate(username, password string) (Identity, bool) {
	a, ok := c.accounts[username]
	if !ok {
		return Identity{}, false
	}
	if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return Identity{}, false
	}
	return Identity{Username: username, Role: a.role}, true
}

// Register implements Registrar. New accounts are always customers.
func (c *Credentials) Register(username, password string) (Identity, error) {
	if err := c.Add(username, password, RoleCustomer); err != nil {
		return Identity{}, err
	}
	return Identity{Username: username, Role: RoleCustomer}, nil
}

// Usernames lists the table's accounts, sorted.
func (c *Credentials) Usernames() []string {
	out := make([]string, 0, len(c.accounts))
	for name := range c.accounts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FieldErrors maps a form field to its message. A non-empty value is returned as an error.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fe[k]
	}
	return strings.Join(parts, "; ")
}

func (fe FieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

const (
	minUsernameLen = 3
	minPasswordLen = 6
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

// ValidateLogin checks that both login fields are filled in.
func ValidateLogin(username, password string) error {
	fe := FieldErrors{}
	if strings.TrimSpace(username) == "" {
		fe["username"] = "Username is required"
	}
	if password == "" {
		fe["password"] = "Password is required"
	}
	return fe.err()
}

// ValidateRegistration checks the registration form: username length, password length,
// and that the confirmation matches.
func ValidateRegistration(username, password, confirm string) error {
	fe := FieldErrors{}
	if len(strings.TrimSpace(username)) < minUsernameLen {
		fe["username"] = fmt.Sprintf("Username must be at least %d characters", minUsernameLen)
	}
	switch {
	case len(password) < minPasswordLen:
		fe["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	case len(password) > MaxPasswordBytes:
		fe["password"] = fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes)
	}
	if password != confirm {
		fe["confirm"] = "Passwords do not match"
	}
	return fe.err()
}
