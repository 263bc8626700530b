package domain

import "time"

// User is the signed-in identity as returned by /auth/me.
type User struct {
	ID        int64
	Email     string
	Username  string
	FullName  string
	CPF       string
	Active    bool
	Verified  bool
	CreatedAt time.Time
}

// DisplayName returns the name shown in the dashboard header.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Credentials are the login form values.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Registration is the sign-up form.
type Registration struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=50"`
	FullName string `validate:"required"`
	CPF      string `validate:"omitempty,cpf"`
	Password string `validate:"required,min=8,max=128"`
}

// AuthToken is the credential issued by /auth/login.
type AuthToken struct {
	AccessToken string
	TokenType   string
}

// TokenInfo is what the client can read from its own credential.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry before now.
func (t *TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
