package handler

import (
	"errors"
	"net/http"

	"github.com/postpilot/postpilot/internal/gemini"
)

// GenerateContentRequest is the request body for content generation. All
// fields are free-form text folded into the prompt.
type GenerateContentRequest struct {
	Topic    string `json:"topic"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
	History  string `json:"history"`
}

// GenerateImageRequest is the request body for image generation
type GenerateImageRequest struct {
	Topic string `json:"topic"`
}

// GenerateContent relays a prompt built from the request to the text model.
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content, err := h.generator.GenerateContent(r.Context(), gemini.GenerationRequest{
		Topic:    req.Topic,
		Tone:     req.Tone,
		Audience: req.Audience,
		History:  req.History,
	})
	if err != nil {
		h.log.Error("content generation failed", "error", err)
		h.Error(w, http.StatusInternalServerError, "Failed to generate content")
		return
	}

	h.JSON(w, http.StatusOK, map[string]string{"content": content})
}

// GenerateImage asks the image model for an illustration and relays it as a
// base64 data URI.
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	image, err := h.generator.GenerateImage(r.Context(), req.Topic)
	if err != nil {
		h.log.Error("image generation failed", "error", err)
		switch {
		case errors.Is(err, gemini.ErrTextInsteadOfImage):
			h.Error(w, http.StatusInternalServerError, "Model returned text instead of an image; try rewording the topic")
		case errors.Is(err, gemini.ErrNoImageData):
			h.Error(w, http.StatusInternalServerError, "Model returned no image data")
		default:
			h.Error(w, http.StatusInternalServerError, "Failed to generate image")
		}
		return
	}

	h.JSON(w, http.StatusOK, map[string]string{"image": image})
}
