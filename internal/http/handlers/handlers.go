package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/friends-gateway/internal/config"
	apierrors "github.com/pribylovaa/friends-gateway/internal/errors"
	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/internal/navigate"
)

//go:generate mockgen -source=handlers.go -destination=../../../mocks/mock_backend.go -package=mocks

// Backend - вызовы бэкенда, нужные хендлерам (реализует clients.Client).
type Backend interface {
	ListFriends(ctx context.Context) (models.FriendsList, error)
	SearchUsers(ctx context.Context, query string) (models.SearchUsersResponse, error)
	InviteFriend(ctx context.Context, in models.InviteFriendRequest) (models.MutationResult, error)
	CreateFriend(ctx context.Context, in models.CreateFriendRequest) (models.MutationResult, error)
	AcceptFriend(ctx context.Context, id string) (models.MutationResult, error)
	IgnoreFriend(ctx context.Context, id string) (models.MutationResult, error)
	DeleteFriend(ctx context.Context, id string) (models.MutationResult, error)

	CreateChat(ctx context.Context, in models.CreateChatRequest) (models.CreateChatResponse, error)
	ListChats(ctx context.Context) (models.ChatsResponse, error)
	ChatMessages(ctx context.Context, chatID string) (models.ChatMessagesResponse, error)
	SendMessage(ctx context.Context, in models.SendMessageRequest) (models.ChatMessage, error)

	ListGroups(ctx context.Context) (models.GroupsResponse, error)
	GetGroup(ctx context.Context, id string) (models.GroupDetail, error)
	CreateGroup(ctx context.Context, in models.CreateGroupRequest) (models.Group, error)
	UpdateGroup(ctx context.Context, in models.UpdateGroupRequest) (models.Group, error)
	DeleteGroup(ctx context.Context, id string) (models.MutationResult, error)
	AddGroupMember(ctx context.Context, in models.AddGroupMemberRequest) (models.MutationResult, error)
	RemoveGroupMember(ctx context.Context, in models.RemoveGroupMemberRequest) (models.MutationResult, error)

	Me(ctx context.Context) (models.AuthUser, error)
	Logout(ctx context.Context) error
}

// Handlers агрегирует зависимости (клиент бэкенда и адреса соседних приложений).
type Handlers struct {
	Backend Backend
	Nav     config.NavigationConfig
}

func New(b Backend, nav config.NavigationConfig) *Handlers {
	return &Handlers{Backend: b, Nav: nav}
}

// writeJSON - единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict - строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// statusErrorInvalidArgument - вспомогалка: локальная ошибка парсинга -> gRPC InvalidArgument.
func statusErrorInvalidArgument() error {
	return status.Error(codes.InvalidArgument, "invalid argument")
}

// fail пишет ошибку; истёкшей сессии добавляет адрес входа
// с возвратом на страницу, откуда пришёл запрос.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	var e *apierrors.Error
	if errors.As(err, &e) && e.Kind == apierrors.KindUnauthenticated && e.RedirectURL == "" {
		e.RedirectURL = navigate.SignInURL(h.Nav.SignInURL, returnTo(r))
	}

	apierrors.WriteError(w, r, err)
}

// returnTo - путь страницы из Referer (без хоста) или "".
func returnTo(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	return u.RequestURI()
}
