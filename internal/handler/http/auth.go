package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/utils"
	"github.com/MKhiriev/go-time-sheet/models"
)

// cookieName is the name of the session cookie carrying the signed token.
const cookieName = "token"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Timesheet API Running"))
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.db.PingContext(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "pong"}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.MessageResponse{Message: "user created successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	utils.WriteJSON(w, models.MessageResponse{Message: "login successful"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.expiredSessionCookie())
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProtectedResponse{Message: "you are authenticated", User: user}, http.StatusOK)
}

// sessionCookie builds the HTTP-only session cookie carrying signedToken.
// Its max-age matches the token lifetime so browser expiry and token expiry
// line up.
func (h *Handler) sessionCookie(signedToken string) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    signedToken,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

// expiredSessionCookie builds a cookie that instructs the browser to drop
// the session immediately.
func (h *Handler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}
