package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/gemini"
	"github.com/postpilot/postpilot/internal/logger"
)

// LinkedInService is the LinkedIn surface the handlers depend on.
type LinkedInService interface {
	AuthCodeURL() string
	ExchangeCode(ctx context.Context, code string) (string, error)
	Profile(ctx context.Context, token string) (json.RawMessage, error)
	ResolveAuthorURN(ctx context.Context, token string) (string, error)
	UploadImage(ctx context.Context, token, owner, imageData string) (string, error)
	CreatePost(ctx context.Context, token, author, content, asset string) (json.RawMessage, error)
}

// Generator is the generative backend behind the content and image endpoints.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerationRequest) (string, error)
	GenerateImage(ctx context.Context, topic string) (string, error)
}

// Handler contains all HTTP handlers
type Handler struct {
	cfg       *config.Config
	log       *logger.Logger
	linkedin  LinkedInService
	generator Generator
}

// New creates a new Handler with the required provider clients.
func New(cfg *config.Config, log *logger.Logger, li LinkedInService, gen Generator) *Handler {
	return &Handler{
		cfg:       cfg,
		log:       log,
		linkedin:  li,
		generator: gen,
	}
}

// JSON helper to write JSON responses
func (h *Handler) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error helper to write error responses
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// DecodeJSON helper to decode request body
func (h *Handler) DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
