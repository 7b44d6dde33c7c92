package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-time-sheet/internal/utils"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, validates the signed token inside it via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The session cookie is absent ([ErrMissingToken]).
//   - The cookie is present but empty ([ErrEmptyToken]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid or cannot be parsed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the signed token string from the session cookie.
//
// It returns the following sentinel errors:
//   - [ErrMissingToken] — if the request carries no session cookie.
//   - [ErrEmptyToken] — if the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		// http.ErrNoCookie is the only error r.Cookie returns
		return "", ErrMissingToken
	}

	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}
