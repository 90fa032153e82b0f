package handler

import (
	"fmt"
	"net/http"
	"net/url"
)

// AuthRedirect sends the browser to LinkedIn's authorization endpoint.
func (h *Handler) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.linkedin.AuthCodeURL(), http.StatusFound)
}

// AuthCallback exchanges the authorization code for an access token and hands
// it to the client app via its callback deep link. The token travels only in
// the redirect; on failure the client gets a generic message.
func (h *Handler) AuthCallback(w http.ResponseWriter, r *http.Request) {
	// Check for error from provider
	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		errDesc := r.URL.Query().Get("error_description")
		h.Error(w, http.StatusBadRequest, fmt.Sprintf("OAuth error: %s - %s", errMsg, errDesc))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Error(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	token, err := h.linkedin.ExchangeCode(r.Context(), code)
	if err != nil {
		h.log.Error("authorization code exchange failed", "error", err)
		h.Error(w, http.StatusInternalServerError, "Failed to exchange authorization code")
		return
	}

	redirect := h.cfg.AppCallbackURL + "?token=" + url.QueryEscape(token)
	http.Redirect(w, r, redirect, http.StatusFound)
}
