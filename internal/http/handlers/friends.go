package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/friends-gateway/internal/errors"
	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/internal/navigate"
)

// ListFriends - ?search= фильтрует по имени; записям без аватара
// подставляется сгенерированный.
func (h *Handlers) ListFriends(w http.ResponseWriter, r *http.Request) {
	list, err := h.Backend.ListFriends(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list.Filter(r.URL.Query().Get("search")).WithAvatars())
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusOK, models.SearchUsersResponse{Results: []models.User{}})
		return
	}

	resp, err := h.Backend.SearchUsers(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) InviteFriend(w http.ResponseWriter, r *http.Request) {
	var in models.InviteFriendRequest
	if err := decodeStrict(r, &in); err != nil || in.ID == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.InviteFriend(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreateFriend(w http.ResponseWriter, r *http.Request) {
	var in models.CreateFriendRequest
	if err := decodeStrict(r, &in); err != nil || in.ID == "" || strings.TrimSpace(in.Name) == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.CreateFriend(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handlers) AcceptFriend(w http.ResponseWriter, r *http.Request) {
	h.friendAction(w, r, h.Backend.AcceptFriend)
}

func (h *Handlers) DeclineFriend(w http.ResponseWriter, r *http.Request) {
	h.friendAction(w, r, h.Backend.IgnoreFriend)
}

func (h *Handlers) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	h.friendAction(w, r, h.Backend.DeleteFriend)
}

func (h *Handlers) friendAction(w http.ResponseWriter, r *http.Request, call func(context.Context, string) (models.MutationResult, error)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := call(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// StartChat создаёт чат с другом и возвращает адрес приложения чата.
// Имя друга обязательно: из него строится название чата.
func (h *Handlers) StartChat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.StartChatRequest
	if err := decodeStrict(r, &in); err != nil || id == "" || strings.TrimSpace(in.Name) == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	chat, err := h.Backend.CreateChat(r.Context(), models.CreateChatRequest{
		Name:           strings.TrimSpace(in.Name),
		ParticipantIDs: []string{id},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if chat.ID == "" {
		h.fail(w, r, apierrors.Malformed("chat", errors.New("chat id missing")))
		return
	}

	target, err := navigate.ChatURL(h.Nav.ChatURL, h.Nav.Origin, chat.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.StartChatResponse{Chat: chat, RedirectURL: target})
}
