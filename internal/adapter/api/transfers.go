package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iho/pixdash/internal/domain"
)

// SubmitInstantTransfer sends req from senderAccountID.
func (c *Client) SubmitInstantTransfer(ctx context.Context, senderAccountID int64, req *domain.TransferRequest) (*domain.Transaction, error) {
	var out transactionResponse

	_, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/transfers/instant",
		endpoint: "POST /transfers/instant",
		query:    url.Values{"sender_account_id": {strconv.FormatInt(senderAccountID, 10)}},
		body:     newTransferRequest(req),
		out:      &out,
	})
	if err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}

// CancelTransfer asks the server to cancel a pending transfer.
func (c *Client) CancelTransfer(ctx context.Context, transactionID string) error {
	_, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/transfers/" + url.PathEscape(transactionID) + "/cancel",
		endpoint: "POST /transfers/{id}/cancel",
	})
	return err
}

// GetTransfer fetches the current state of a transfer the user sent or received.
func (c *Client) GetTransfer(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var out transactionResponse

	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/transfers/" + url.PathEscape(transactionID),
		endpoint: "GET /transfers/{id}",
		out:      &out,
	})
	if err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}
