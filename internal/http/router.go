package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/friends-gateway/internal/config"
	"github.com/pribylovaa/friends-gateway/internal/http/handlers"
	"github.com/pribylovaa/friends-gateway/internal/http/middleware"
)

// Options - параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой - роуты регистрируются на корне.
	Session  middleware.SessionOptions
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(b handlers.Backend, nav config.NavigationConfig, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(), // до логирования
		middleware.Logging(opts.Logger),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}
	root.Use(middleware.Session(opts.Session))

	h := handlers.New(b, nav)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, nav.SignInURL)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, nav.SignInURL)
	return root
}

// registerRoutes - единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, signInURL string) {
	// session (публичные)
	r.Get("/session", h.GetSession)
	r.Put("/session", h.PutSession)
	r.Delete("/session", h.DeleteSession)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(signInURL))

		r.Get("/session/me", h.GetMe)

		// friends
		r.Get("/friends", h.ListFriends)
		r.Get("/friends/search", h.SearchUsers)
		r.Post("/friends/invite", h.InviteFriend)
		r.Post("/friends", h.CreateFriend)
		r.Post("/friends/{id}/accept", h.AcceptFriend)
		r.Post("/friends/{id}/decline", h.DeclineFriend)
		r.Delete("/friends/{id}", h.DeleteFriend)
		r.Post("/friends/{id}/chat", h.StartChat)

		// chats
		r.Get("/chats", h.ListChats)
		r.Post("/chats", h.CreateChat)
		r.Get("/chats/{id}/messages", h.ListMessages)
		r.Post("/chats/{id}/messages", h.SendMessage)

		// groups
		r.Get("/groups", h.ListGroups)
		r.Post("/groups", h.CreateGroup)
		r.Get("/groups/{id}", h.GetGroup)
		r.Patch("/groups/{id}", h.UpdateGroup)
		r.Delete("/groups/{id}", h.DeleteGroup)
		r.Post("/groups/{id}/members", h.AddGroupMember)
		r.Delete("/groups/{id}/members/{member}", h.RemoveGroupMember)
	})
}
