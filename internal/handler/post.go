package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/postpilot/postpilot/internal/linkedin"
)

// UploadImageRequest is the request body for the two-phase image upload
type UploadImageRequest struct {
	Token     string `json:"token"`
	Author    string `json:"author"`
	ImageData string `json:"imageData"`
}

// CreatePostRequest is the request body for post submission. Author and asset
// are optional: a missing or malformed author is resolved from the token, a
// missing asset yields a text-only post.
type CreatePostRequest struct {
	Token   string `json:"token"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
	Asset   string `json:"asset,omitempty"`
}

// UploadImage registers and uploads an image asset owned by the author URN.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req UploadImageRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Token == "" || req.Author == "" || req.ImageData == "" {
		h.Error(w, http.StatusBadRequest, "token, author and imageData are required")
		return
	}

	asset, err := h.linkedin.UploadImage(r.Context(), req.Token, req.Author, req.ImageData)
	if err != nil {
		if errors.Is(err, linkedin.ErrInvalidImageData) {
			h.Error(w, http.StatusBadRequest, "imageData is not valid base64")
			return
		}
		h.log.Error("image upload failed", "error", err)
		h.Error(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	h.JSON(w, http.StatusOK, map[string]string{"asset": asset})
}

// PostToLinkedIn composes and submits a UGC post, resolving the author URN
// from the token when the caller did not supply a well-formed one.
func (h *Handler) PostToLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Token == "" || req.Content == "" {
		h.Error(w, http.StatusBadRequest, "token and content are required")
		return
	}

	author := req.Author
	if !strings.HasPrefix(author, linkedin.AuthorURNPrefix) {
		resolved, err := h.linkedin.ResolveAuthorURN(r.Context(), req.Token)
		if err != nil {
			h.log.Error("author resolution failed", "error", err)
			if errors.Is(err, linkedin.ErrUnresolvableIdentity) {
				h.Error(w, http.StatusBadRequest, "Could not resolve author from token")
				return
			}
			h.Error(w, http.StatusInternalServerError, "Failed to resolve author")
			return
		}
		author = resolved
	}

	postURN, err := h.linkedin.CreatePost(r.Context(), req.Token, author, req.Content, req.Asset)
	if err != nil {
		h.log.Error("post submission failed", "error", err)
		h.Error(w, http.StatusInternalServerError, "Failed to submit post")
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"postUrn": postURN,
	})
}
