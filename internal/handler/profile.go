package handler

import (
	"net/http"
	"strings"
)

// GetProfile relays the provider's profile document for the caller's token.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		h.Error(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	profile, err := h.linkedin.Profile(r.Context(), token)
	if err != nil {
		h.log.Error("profile fetch failed", "error", err)
		h.Error(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	h.JSON(w, http.StatusOK, profile)
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, prefix) {
		return strings.TrimSpace(authz[len(prefix):])
	}
	return ""
}
