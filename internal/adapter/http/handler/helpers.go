package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError writes err with the status from mapDomainError and the
// same text the notification surface shows.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	resp := dto.ErrorResponse{
		Error:   message,
		Message: domain.UserMessage(err),
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		resp.Field = vErr.Field
	}

	writeJSON(w, mapDomainError(err), resp)
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var (
		vErr *domain.ValidationError
		aErr *domain.APIError
		nErr *domain.NetworkError
	)

	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrNoStoredCredential):
		return http.StatusUnauthorized
	case errors.As(err, &aErr):
		if aErr.StatusCode >= 400 && aErr.StatusCode < 500 {
			return aErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.As(err, &nErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseBoolQuery reports whether key is set to a true value.
func parseBoolQuery(r *http.Request, key string) bool {
	b, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && b
}

// parseID parses a positive identifier. A blank value yields zero.
func parseID(field, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(field, "must be a positive number")
	}
	return id, nil
}

// parsePeriod reads year and month from the query string. Both blank
// selects the current month.
func parsePeriod(r *http.Request) (domain.Period, error) {
	q := r.URL.Query()
	if q.Get("year") == "" && q.Get("month") == "" {
		return domain.Period{}, nil
	}

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		return domain.Period{}, domain.NewValidationError("year", "must be a number")
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		return domain.Period{}, domain.NewValidationError("month", "must be a number")
	}

	return domain.Period{Year: year, Month: time.Month(month)}, nil
}

// parseFilter reads the history filter from the query string.
func parseFilter(r *http.Request, loc *time.Location) (domain.TransactionFilter, error) {
	q := r.URL.Query()

	accountID, err := parseID("account_id", q.Get("account_id"))
	if err != nil {
		return domain.TransactionFilter{}, err
	}

	start, err := domain.ParseDate("start_date", q.Get("start_date"), loc)
	if err != nil {
		return domain.TransactionFilter{}, err
	}

	end, err := domain.ParseDate("end_date", q.Get("end_date"), loc)
	if err != nil {
		return domain.TransactionFilter{}, err
	}

	return domain.TransactionFilter{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 0),
		Status:    domain.TransactionStatus(q.Get("status")),
		StartDate: start,
		EndDate:   end,
	}, nil
}
