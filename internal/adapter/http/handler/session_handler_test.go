package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

func TestSessionHandler_Login(t *testing.T) {
	flags := presenter.NewFlags()
	flags.ShowLogin()

	stub := &sessionServiceStub{}
	stub.loginFn = func(ctx context.Context, creds domain.Credentials) error {
		if creds.Email != "ana@example.com" || creds.Password != "s3cret!" {
			t.Errorf("unexpected credentials %+v", creds)
		}
		stub.status = usecase.SessionStatus{
			Authenticated: true,
			User:          &domain.User{ID: 7, Email: creds.Email, Username: "ana"},
			Token:         &domain.TokenInfo{Subject: "ana@example.com", ExpiresAt: time.Now().Add(time.Hour)},
		}
		return nil
	}
	handler := NewSessionHandler(stub, flags)

	body, _ := json.Marshal(dto.LoginRequest{Email: "ana@example.com", Password: "s3cret!"})
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/session/login", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Authenticated || resp.User == nil || resp.User.ID != 7 {
		t.Fatalf("expected signed-in session, got %+v", resp)
	}
	if resp.Token == nil || resp.Token.Expired || resp.Token.ExpiresAt == nil {
		t.Fatalf("expected live token info, got %+v", resp.Token)
	}
	if resp.View.LoginRequired {
		t.Fatalf("expected login prompt to be cleared after sign-in")
	}
}

func TestSessionHandler_LoginRejected(t *testing.T) {
	handler := NewSessionHandler(&sessionServiceStub{
		loginFn: func(ctx context.Context, creds domain.Credentials) error {
			return &domain.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"}
		},
	}, presenter.NewFlags())

	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/session/login", bytes.NewBufferString(`{"email":"ana@example.com","password":"x"}`)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Incorrect email or password" {
		t.Fatalf("expected server detail, got %+v", resp)
	}
}

func TestSessionHandler_RestoreWithoutCredential(t *testing.T) {
	flags := presenter.NewFlags()
	handler := NewSessionHandler(&sessionServiceStub{
		restoreFn: func(ctx context.Context) error {
			flags.ShowLogin()
			return domain.ErrNoStoredCredential
		},
	}, flags)

	rec := httptest.NewRecorder()
	handler.Restore(rec, httptest.NewRequest(http.MethodPost, "/session/restore", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.Status(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	var resp dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Authenticated || !resp.View.LoginRequired {
		t.Fatalf("expected anonymous session asking for login, got %+v", resp)
	}
}

func TestSessionHandler_StatusConsumesFormCleared(t *testing.T) {
	flags := presenter.NewFlags()
	flags.ClearTransferForm()
	handler := NewSessionHandler(&sessionServiceStub{}, flags)

	first := httptest.NewRecorder()
	handler.Status(first, httptest.NewRequest(http.MethodGet, "/session", nil))
	second := httptest.NewRecorder()
	handler.Status(second, httptest.NewRequest(http.MethodGet, "/session", nil))

	var a, b dto.SessionResponse
	json.Unmarshal(first.Body.Bytes(), &a)
	json.Unmarshal(second.Body.Bytes(), &b)

	if !a.View.FormCleared || b.View.FormCleared {
		t.Fatalf("expected form-cleared signal exactly once, got %+v then %+v", a.View, b.View)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	stub := &sessionServiceStub{status: usecase.SessionStatus{Authenticated: true}}
	handler := NewSessionHandler(stub, presenter.NewFlags())

	rec := httptest.NewRecorder()
	handler.Logout(rec, httptest.NewRequest(http.MethodPost, "/session/logout", nil))

	if rec.Code != http.StatusOK || !stub.loggedOut {
		t.Fatalf("expected logout, got %d (logged out %v)", rec.Code, stub.loggedOut)
	}
}

func TestSessionHandler_Register(t *testing.T) {
	var captured domain.Registration
	handler := NewSessionHandler(&sessionServiceStub{
		registerFn: func(ctx context.Context, reg domain.Registration) error {
			captured = reg
			return nil
		},
	}, presenter.NewFlags())

	body, _ := json.Marshal(dto.RegisterRequest{Email: "bia@example.com", Username: "bia", FullName: "Bia Lima", Password: "longpassword"})
	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/session/register", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Username != "bia" || captured.FullName != "Bia Lima" {
		t.Fatalf("expected registration to match request, got %+v", captured)
	}
}
