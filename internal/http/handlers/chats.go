package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

func (h *Handlers) ListChats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Backend.ListChats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreateChat(w http.ResponseWriter, r *http.Request) {
	var in models.CreateChatRequest
	if err := decodeStrict(r, &in); err != nil || strings.TrimSpace(in.Name) == "" || len(in.ParticipantIDs) == 0 {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.CreateChat(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.ChatMessages(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SendMessage - chat берём из пути.
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.SendMessageRequest
	if err := decodeStrict(r, &in); err != nil || id == "" || strings.TrimSpace(in.Body) == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	in.Chat = id
	resp, err := h.Backend.SendMessage(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
