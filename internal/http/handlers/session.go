package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/internal/navigate"
	logctx "github.com/pribylovaa/friends-gateway/internal/pkg/log"
)

// GetSession - состояние учётных данных без самих учётных данных.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, auth.FromContext(r.Context()).Session())
}

// PutSession сохраняет login/token (пустое значение удаляет cookie).
func (h *Handlers) PutSession(w http.ResponseWriter, r *http.Request) {
	var in models.SetCredentialRequest
	if err := decodeStrict(r, &in); err != nil || (in.Login == "" && in.Token == "") {
		h.fail(w, r, statusErrorInvalidArgument())
		return
	}

	store := auth.FromContext(r.Context())
	store.SetCredential(in.Login, in.Token)

	writeJSON(w, http.StatusOK, store.Session())
}

// DeleteSession - выход: бэкенд уведомляется best-effort, локальные
// учётные данные удаляются всегда.
func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	store := auth.FromContext(r.Context())

	if store.IsAuthenticated() {
		if err := h.Backend.Logout(r.Context()); err != nil {
			logctx.From(r.Context()).Warn("backend_logout_failed", slog.String("err", err.Error()))
		}
	}

	store.Clear()

	writeJSON(w, http.StatusOK, models.LogoutResponse{
		RedirectURL: navigate.SignInURL(h.Nav.SignInURL, ""),
	})
}

// GetMe загружает профиль и обновляет отображаемого пользователя.
func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.Backend.Me(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	store := auth.FromContext(r.Context())
	if u.Email != "" {
		if u.Name == "" {
			u.Name = auth.NameFromEmail(u.Email)
		}
		store.SetUser(&u)
	}

	writeJSON(w, http.StatusOK, store.Session())
}
