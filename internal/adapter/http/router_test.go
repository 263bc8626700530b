package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/adapter/api"
	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/adapter/http/handler"
	apimiddleware "github.com/iho/pixdash/internal/adapter/http/middleware"
	"github.com/iho/pixdash/internal/adapter/notify"
	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/adapter/repository/memory"
	"github.com/iho/pixdash/internal/infrastructure/auth"
	"github.com/iho/pixdash/internal/infrastructure/metrics"
	"github.com/iho/pixdash/internal/usecase"
)

// fakeBank mimics the remote banking API for a single user.
type fakeBank struct {
	mu           sync.Mutex
	balance      string
	transactions []string
	cancelled    []string
}

func (b *fakeBank) handler(t *testing.T) http.Handler {
	r := chi.NewRouter()

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail":"Could not validate credentials"}`)
			return false
		}
		return true
	}

	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok-1","token_type":"bearer"}`)
	})
	r.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if authorized(w, r) {
			fmt.Fprint(w, `{"id":7,"email":"ana@example.com","username":"ana","full_name":"Ana Souza","is_active":true,"is_verified":true,"created_at":"2026-01-02T10:00:00"}`)
		}
	})
	r.Get("/api/accounts/", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		fmt.Fprintf(w, `[{"id":1,"account_number":"12345-6","account_type":"checking","bank_code":"001","branch_code":"0001","balance":%q,"daily_limit":"5000.00","is_active":true,"is_blocked":false,"owner_id":7,"created_at":"2026-01-02T10:00:00"}]`, b.balance)
	})
	r.Get("/api/transactions/", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		fmt.Fprintf(w, "[%s]", strings.Join(b.transactions, ","))
	})
	r.Post("/api/transfers/instant", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if r.URL.Query().Get("sender_account_id") != "1" {
			t.Errorf("unexpected sender %q", r.URL.Query().Get("sender_account_id"))
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("invalid transfer body: %v", err)
		}
		if body["amount"] != "100.00" || body["pix_key"] != "bia@example.com" {
			t.Errorf("unexpected transfer body %v", body)
		}

		txn := fmt.Sprintf(`{"transaction_id":"TX1","sender_id":7,"sender_account_id":1,"amount":"100.00","currency":"BRL","transaction_type":"pix_transfer","status":"pending","pix_key":"bia@example.com","processing_fee":"0","created_at":%q}`,
			time.Now().UTC().Format("2006-01-02T15:04:05"))

		b.mu.Lock()
		b.balance = "400.00"
		b.transactions = append([]string{txn}, b.transactions...)
		b.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, txn)
	})
	r.Get("/api/transfers/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, txn := range b.transactions {
			if strings.Contains(txn, fmt.Sprintf(`"transaction_id":%q`, chi.URLParam(r, "id"))) {
				b.transactions[i] = strings.Replace(txn, `"status":"pending"`, `"status":"completed"`, 1)
				fmt.Fprint(w, b.transactions[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"Transaction not found"}`)
	})
	r.Get("/api/transactions/summary/monthly", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if r.URL.Query().Get("year") != "2026" || r.URL.Query().Get("month") != "2" {
			t.Errorf("unexpected period %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"total_transactions":4,"total_amount":"350.00","total_fees":"0","successful_transactions":3,"failed_transactions":0}`)
	})
	r.Post("/api/transfers/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		b.cancelled = append(b.cancelled, chi.URLParam(r, "id"))
		b.mu.Unlock()
		fmt.Fprint(w, `{"message":"Transaction cancelled successfully"}`)
	})

	return r
}

type routerFixture struct {
	router   http.Handler
	bank     *fakeBank
	store    *memory.CredentialStore
	registry *prometheus.Registry
	center   *notify.Center
}

func newRouterFixture(t *testing.T, opts ...func(*RouterConfig)) *routerFixture {
	t.Helper()

	bank := &fakeBank{balance: "500.00"}
	remote := httptest.NewServer(bank.handler(t))
	t.Cleanup(remote.Close)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	logger := zerolog.Nop()

	state := usecase.NewState()
	center := notify.NewCenter(time.Minute, notify.WithCounter(m))
	flags := presenter.NewFlags()
	store := memory.NewCredentialStore()

	client := api.NewClient(remote.URL+"/api", state.Token, api.WithRecorder(m), api.WithTimeout(5*time.Second))

	app := usecase.NewApp(usecase.AppConfig{
		API:       client,
		Store:     store,
		Inspector: auth.NewInspector(),
		Notifier:  center,
		Presenter: flags,
		Logger:    logger,
		Now:       func() time.Time { return time.Now().UTC() },
		Observer:  m,
		State:     state,
	})

	cfg := RouterConfig{
		SessionHandler:      handler.NewSessionHandler(app.Session, flags),
		AccountHandler:      handler.NewAccountHandler(app.Accounts),
		TransactionHandler:  handler.NewTransactionHandler(app.Transactions, state, time.UTC),
		TransferHandler:     handler.NewTransferHandler(app.Transfers, state),
		DashboardHandler:    handler.NewDashboardHandler(app.Dashboard, state),
		NotificationHandler: handler.NewNotificationHandler(center),
		HealthHandler:       handler.NewHealthHandler(nil),
		Logger:              logger,
		Metrics:             m,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &routerFixture{
		router:   NewRouter(cfg),
		bank:     bank,
		store:    store,
		registry: registry,
		center:   center,
	}
}

func (f *routerFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /ready to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	f := newRouterFixture(t, func(cfg *RouterConfig) {
		cfg.RateLimiter = apimiddleware.NewRateLimiter(1, 1)
	})

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	f.router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	f.router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_AnonymousDashboardRequiresNothing(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Authenticated || resp.Summary.AccountCount != 0 || !resp.Summary.TotalBalance.IsZero() {
		t.Fatalf("expected empty anonymous dashboard, got %+v", resp)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/transactions/recent?refresh=true", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before sign-in, got %d", rec.Code)
	}
}

func TestNewRouter_SessionTransferFlow(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"ana@example.com","password":"s3cret!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected login to succeed, got %d: %s", rec.Code, rec.Body.String())
	}
	if tok, err := f.store.Get(t.Context()); err != nil || tok != "tok-1" {
		t.Fatalf("expected credential to be persisted, got %q, %v", tok, err)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/dashboard", "")
	var before dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &before); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	if before.Summary.TotalBalance.String() != "500" || before.User == nil || before.User.DisplayName != "Ana Souza" {
		t.Fatalf("unexpected dashboard after login: %+v", before)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/transfers",
		`{"sender_account_id":1,"recipient_type":"pix","amount":"100","pix_key":"bia@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected transfer to be created, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/api/v1/dashboard", "")
	var after dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &after); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	if after.Summary.TotalBalance.String() != "400" {
		t.Fatalf("expected refreshed balance 400, got %s", after.Summary.TotalBalance)
	}
	if after.Summary.TodayTransfers.Count != 1 || after.Summary.PendingExposure.Count != 1 {
		t.Fatalf("expected the pending transfer in today's aggregates, got %+v", after.Summary)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/session", "")
	var session dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	if !session.Authenticated || !session.View.FormCleared {
		t.Fatalf("expected signed-in session with cleared form, got %+v", session)
	}

	rec = f.do(t, http.MethodPost, "/api/v1/transfers/TX1/cancel", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected cancel to succeed, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(f.bank.cancelled) != 1 || f.bank.cancelled[0] != "TX1" {
		t.Fatalf("expected TX1 cancel to reach the server, got %v", f.bank.cancelled)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/notifications", "")
	var notes []dto.NotificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &notes); err != nil {
		t.Fatalf("failed to decode notifications: %v", err)
	}
	if len(notes) == 0 {
		t.Fatalf("expected success notifications")
	}

	rec = f.do(t, http.MethodPost, "/api/v1/session/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected logout to succeed, got %d", rec.Code)
	}
	if _, err := f.store.Get(t.Context()); err == nil {
		t.Fatalf("expected credential to be removed on logout")
	}
}

func TestNewRouter_TransferStatusAndMonthlySummary(t *testing.T) {
	f := newRouterFixture(t)

	f.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"ana@example.com","password":"s3cret!"}`)
	rec := f.do(t, http.MethodPost, "/api/v1/transfers",
		`{"sender_account_id":1,"recipient_type":"pix","amount":"100","pix_key":"bia@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected transfer to be created, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/api/v1/transfers/TX1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected transfer status, got %d: %s", rec.Code, rec.Body.String())
	}
	var txn dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &txn); err != nil {
		t.Fatalf("failed to decode transfer: %v", err)
	}
	if txn.Status != "completed" || !txn.Final {
		t.Fatalf("expected settled transfer, got %+v", txn)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/dashboard", "")
	var dash dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	if dash.Summary.PendingExposure.Count != 0 {
		t.Fatalf("expected settlement to refresh the pending aggregates, got %+v", dash.Summary)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/transfers/TX404", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown transfer, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/transactions/summary?year=2026&month=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected monthly summary, got %d: %s", rec.Code, rec.Body.String())
	}
	var monthly dto.MonthlySummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &monthly); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if monthly.Period != "2026-02" || monthly.TotalTransactions != 4 || monthly.InFlight != 1 {
		t.Fatalf("unexpected monthly summary %+v", monthly)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/dashboard", "")
	dash = dto.DashboardResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	if dash.Monthly == nil || dash.Monthly.Period != "2026-02" {
		t.Fatalf("expected the dashboard to carry the loaded month, got %+v", dash.Monthly)
	}
}

func TestNewRouter_InvalidTransferNeverReachesServer(t *testing.T) {
	f := newRouterFixture(t)

	f.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"ana@example.com","password":"s3cret!"}`)

	rec := f.do(t, http.MethodPost, "/api/v1/transfers",
		`{"sender_account_id":1,"recipient_type":"pix","amount":"10.005","pix_key":"bia@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Field != "amount" {
		t.Fatalf("expected amount field error, got %+v", resp)
	}
	if f.bank.balance != "500.00" {
		t.Fatalf("expected no transfer on the server, balance %s", f.bank.balance)
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	f.do(t, http.MethodGet, "/health", "")

	rec := f.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pixdash_http_requests_total") {
		t.Fatalf("expected local API metrics to be exported")
	}
}
