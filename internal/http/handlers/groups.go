package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Backend.ListGroups(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.GetGroup(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var in models.CreateGroupRequest
	if err := decodeStrict(r, &in); err != nil || strings.TrimSpace(in.Name) == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.CreateGroup(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// UpdateGroup - id берём из пути; хотя бы одно поле обязательно.
func (h *Handlers) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.UpdateGroupRequest
	if err := decodeStrict(r, &in); err != nil || id == "" || (in.Name == nil && in.Description == nil) {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	in.ID = id
	resp, err := h.Backend.UpdateGroup(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.DeleteGroup(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddGroupMember - участником может быть пользователь или другая группа.
func (h *Handlers) AddGroupMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.AddGroupMemberRequest
	if err := decodeStrict(r, &in); err != nil || id == "" || in.Member == "" || !in.Type.Valid() {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	in.Group = id
	resp, err := h.Backend.AddGroupMember(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) RemoveGroupMember(w http.ResponseWriter, r *http.Request) {
	id, member := chi.URLParam(r, "id"), chi.URLParam(r, "member")
	if id == "" || member == "" {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	resp, err := h.Backend.RemoveGroupMember(r.Context(), models.RemoveGroupMemberRequest{Group: id, Member: member})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
