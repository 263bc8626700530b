package api

import (
	"context"
	"net/http"

	"github.com/iho/pixdash/internal/domain"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthToken, error) {
	var out tokenResponse

	_, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/login",
		endpoint: "POST /auth/login",
		body:     loginRequest{Email: creds.Email, Password: creds.Password},
		out:      &out,
	})
	if err != nil {
		return nil, err
	}

	return &domain.AuthToken{AccessToken: out.AccessToken, TokenType: out.TokenType}, nil
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/register",
		endpoint: "POST /auth/register",
		body: registerRequest{
			Email:    reg.Email,
			Username: reg.Username,
			FullName: reg.FullName,
			CPF:      optional(reg.CPF),
			Password: reg.Password,
		},
	})
	return err
}

// Me returns the user the bearer token belongs to.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out userResponse

	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/auth/me",
		endpoint: "GET /auth/me",
		out:      &out,
	})
	if err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}
