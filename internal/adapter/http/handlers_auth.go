package adapthttp

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"

	"escena/internal/app"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Petición inválida")
		return
	}

	res, err := s.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, app.ErrStoreUnavailable):
		writeError(w, http.StatusInternalServerError, "Error de conexión a la base de datos")
	case errors.Is(err, app.ErrVerificationFailed):
		writeError(w, http.StatusInternalServerError, "Error al verificar la contraseña")
	case err != nil:
		s.log.WithError(err).Error("login failed")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"token": res.Token,
			"user":  res.User,
		})
	}
}

// handleMe returns the identity the gate attached to the request.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := IdentityFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, msgAuthError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":     claims.UserID(),
		"nombre": claims.DisplayName,
		"email":  claims.Email,
		"role":   claims.Role,
	})
}

func (s *Server) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		http.NotFound(w, r)
		return
	}

	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	http.Redirect(w, r, s.oidc.OAuth2Config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleSSOCallback(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		http.NotFound(w, r)
		return
	}

	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		writeError(w, http.StatusBadRequest, "Estado de sesión inválido")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	oauthToken, err := s.oidc.OAuth2Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.log.WithError(err).Error("oauth code exchange failed")
		writeError(w, http.StatusInternalServerError, "Error de autenticación")
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Error de autenticación")
		return
	}

	verifier := s.oidc.Provider.Verifier(&oidc.Config{ClientID: s.oidc.OAuth2Config.ClientID})
	idToken, err := verifier.Verify(r.Context(), rawIDToken)
	if err != nil {
		s.log.WithError(err).Error("id token verification failed")
		writeError(w, http.StatusInternalServerError, "Error de autenticación")
		return
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil || claims.Email == "" {
		writeError(w, http.StatusInternalServerError, "Error de autenticación")
		return
	}

	// SSO signs in provisioned admins only; it never creates accounts.
	res, err := s.auth.LoginSSO(r.Context(), claims.Email)
	if err != nil {
		s.log.WithError(err).WithField("email", claims.Email).Warn("sso login rejected")
		writeError(w, http.StatusForbidden, "Usuario no autorizado")
		return
	}

	http.Redirect(w, r, "/admin#token="+res.Token, http.StatusFound)
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
