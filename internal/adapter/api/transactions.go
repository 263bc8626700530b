package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iho/pixdash/internal/domain"
)

// ListTransactions returns transactions matching filter, newest first.
// A filter with an AccountID lists that account's transactions instead.
func (c *Client) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	var out []transactionResponse

	rc := call{
		method:   http.MethodGet,
		path:     "/transactions/",
		endpoint: "GET /transactions/",
		query:    filterQuery(filter),
		out:      &out,
	}
	if filter.AccountID > 0 {
		rc.path = "/transactions/account/" + strconv.FormatInt(filter.AccountID, 10)
		rc.endpoint = "GET /transactions/account/{id}"
		rc.query = filterQuery(domain.TransactionFilter{Limit: filter.Limit})
	}

	_, err := c.do(ctx, rc)
	if err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, 0, len(out))
	for _, t := range out {
		txns = append(txns, t.toDomain())
	}

	return txns, nil
}

// ExportTransactionsCSV streams the CSV export for the filter's date range into w.
func (c *Client) ExportTransactionsCSV(ctx context.Context, filter domain.TransactionFilter, w io.Writer) (int64, error) {
	return c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/transactions/export/csv",
		endpoint: "GET /transactions/export/csv",
		query:    filterQuery(domain.TransactionFilter{StartDate: filter.StartDate, EndDate: filter.EndDate}),
		sink:     w,
	})
}

// MonthlySummary returns the server's tally of the user's sent transactions in period.
func (c *Client) MonthlySummary(ctx context.Context, period domain.Period) (*domain.MonthlySummary, error) {
	var out monthlySummaryResponse

	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/transactions/summary/monthly",
		endpoint: "GET /transactions/summary/monthly",
		query: url.Values{
			"year":  {strconv.Itoa(period.Year)},
			"month": {strconv.Itoa(int(period.Month))},
		},
		out: &out,
	})
	if err != nil {
		return nil, err
	}

	return out.toDomain(period), nil
}

func filterQuery(filter domain.TransactionFilter) url.Values {
	q := url.Values{}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if !filter.StartDate.IsZero() {
		q.Set("start_date", filter.StartDate.Format(domain.DateLayout))
	}
	if !filter.EndDate.IsZero() {
		q.Set("end_date", filter.EndDate.Format(domain.DateLayout))
	}
	return q
}
