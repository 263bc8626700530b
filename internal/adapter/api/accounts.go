package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iho/pixdash/internal/domain"
)

// ListAccounts returns every account of the signed-in user.
func (c *Client) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	var out []accountResponse

	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/accounts/",
		endpoint: "GET /accounts/",
		out:      &out,
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(out))
	for _, a := range out {
		accounts = append(accounts, a.toDomain())
	}

	return accounts, nil
}

// CreateAccount opens a new account.
func (c *Client) CreateAccount(ctx context.Context, input domain.NewAccount) (*domain.Account, error) {
	var out accountResponse

	_, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/accounts/",
		endpoint: "POST /accounts/",
		body: accountRequest{
			AccountType: string(input.Type),
			BankCode:    input.BankCode,
			BranchCode:  input.BranchCode,
			PixKey:      optional(input.PixKey),
			PixKeyType:  optional(string(input.PixKeyType)),
		},
		out: &out,
	})
	if err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}

// UpdateAccount changes the non-nil fields of update on account id.
func (c *Client) UpdateAccount(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	var out accountResponse

	_, err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     "/accounts/" + strconv.FormatInt(id, 10),
		endpoint: "PUT /accounts/{id}",
		body:     newAccountUpdateRequest(update),
		out:      &out,
	})
	if err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}
