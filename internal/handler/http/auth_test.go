// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-time-sheet/internal/config"
	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/service"
	"github.com/MKhiriev/go-time-sheet/internal/store"
	"github.com/MKhiriev/go-time-sheet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// stubPinger implements Pinger with a fixed outcome.
type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error { return p.err }

// newTestHandler builds a Handler with the given service mocks and a
// reachable stub database.
func newTestHandler(t *testing.T, auth service.AuthService, sheets service.SheetService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		SheetService: sheets,
	}
	cfg := &config.StructuredConfig{
		App: config.App{TokenDuration: time.Hour},
	}
	return NewHandler(svcs, stubPinger{}, cfg, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and user id.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}

// decodeMessage extracts the `message` field from a JSON response body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

// sessionCookieFrom returns the session cookie set on the response, failing
// the test when it is absent.
func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName {
			return cookie
		}
	}
	t.Fatalf("no %q cookie on response", cookieName)
	return nil
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Username: "alice",
	Password: "correct horse battery staple",
}

// ─────────────────────────────────────────────
// root and ping
// ─────────────────────────────────────────────

func TestRoot(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockSheetService{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Timesheet API Running", rec.Body.String())
}

func TestPing(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "database reachable", pingErr: nil, wantStatus: http.StatusOK},
		{name: "database unreachable", pingErr: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{}, &mockSheetService{})
			h.db = stubPinger{err: tt.pingErr}

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			rec := httptest.NewRecorder()

			h.ping(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a valid registration request results in
// 201 Created and a confirmation message. No session is issued on signup.
func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			return u, nil
		},
	}

	h := newTestHandler(t, auth, &mockSheetService{})
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user created successfully", decodeMessage(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockSheetService{})
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing fields",
			serviceErr:  service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided",
		},
		{
			name:        "duplicate username",
			serviceErr:  store.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username already exists",
		},
		{
			name:        "storage failure",
			serviceErr:  store.ErrExecutingQuery,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			h := newTestHandler(t, auth, &mockSheetService{})
			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()

			h.signup(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that a valid login results in 200 OK and an
// HTTP-only session cookie whose max-age matches the token lifetime.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 42
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken, 42), nil
		},
	}

	h := newTestHandler(t, auth, &mockSheetService{})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
}

// TestLogin_InvalidCredentials verifies that unknown users and wrong
// passwords both come back as the same 400 response.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newTestHandler(t, auth, &mockSheetService{})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid username/password", decodeMessage(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(t, auth, &mockSheetService{})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout verifies that logout always succeeds and tells the browser to
// drop the session cookie.
func TestLogout(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockSheetService{})
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// ─────────────────────────────────────────────
// protected
// ─────────────────────────────────────────────

func TestProtected_Success(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "alice"}, nil
		},
	}

	h := newTestHandler(t, auth, &mockSheetService{})
	req := requestWithUserID(http.MethodGet, "/protected", nil, 42)
	rec := httptest.NewRecorder()

	h.protected(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProtectedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.User.UserID)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestProtected_NoUserIDInContext(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockSheetService{})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	h.protected(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
