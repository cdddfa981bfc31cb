package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mindwave-app/mindwave/internal/domain"
	"github.com/mindwave-app/mindwave/internal/service"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleSignup processes a JSON signup request. A successful signup is
// already authenticated: the session cookie is set and the token returned.
// POST /signup
// Request:  {"username":"...","password":"..."}
// Response: 201 {"success":true,"message":"...","token":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Username and password required")
		case errors.Is(err, domain.ErrDuplicateUsername):
			writeError(w, http.StatusBadRequest, "Username already exists")
		default:
			slog.Error("signup user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	h.setSessionCookie(w, token)
	slog.Info("user signed up", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "User created successfully",
		Token:   token,
	})
}

// HandleLogin processes a JSON login request.
// POST /login
// Request:  {"username":"...","password":"..."}
// Response: 200 {"success":true,"message":"...","token":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Username and password required")
		case errors.Is(err, domain.ErrUnauthorized):
			// Same message for unknown username and wrong password.
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			slog.Error("login user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	h.setSessionCookie(w, token)
	slog.Info("user logged in", "user_id", user.ID)

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.auth.SessionTTL().Seconds()),
	})
}
