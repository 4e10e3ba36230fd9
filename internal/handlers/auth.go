package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"landpress/internal/session"
)

// Auth groups the authentication HTTP handlers. The editor is a
// single-admin tool, so credentials come from configuration rather
// than a user table.
type Auth struct {
	sessions     *session.Store
	adminEmail   string
	passwordHash string
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, adminEmail, passwordHash string) *Auth {
	return &Auth{
		sessions:     sessions,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the admin credentials and opens a session.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if a.passwordHash == "" {
		slog.Warn("login attempt while ADMIN_PASSWORD_HASH is unset")
		writeError(w, http.StatusUnauthorized, "login disabled: ADMIN_PASSWORD_HASH is not set")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(a.adminEmail)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(req.Password)) == nil
	if !emailOK || !passOK {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{Email: req.Email}); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
