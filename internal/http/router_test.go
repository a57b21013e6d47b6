package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	"github.com/pribylovaa/friends-gateway/internal/config"
	"github.com/pribylovaa/friends-gateway/internal/http/middleware"
	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/mocks"
)

func newTestRouter(t *testing.T, basePath string) (http.Handler, *mocks.MockBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mb := mocks.NewMockBackend(ctrl)

	nav := config.NavigationConfig{
		SignInURL: "https://id.example.com/login",
		ChatURL:   "/chat/",
		Origin:    "https://app.example.com",
	}

	h := NewRouter(mb, nav, Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout:  time.Second,
		BasePath: basePath,
		Session: middleware.SessionOptions{
			Names:   auth.DefaultCookieNames(),
			Cookies: auth.DefaultCookieOptions(),
		},
	})

	return h, mb
}

func TestRouter_PublicSession(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/session", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	var s models.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	require.False(t, s.Authenticated)
	require.True(t, s.Initialized)
}

func TestRouter_Protected_Unauthenticated(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/friends", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var env struct {
		Error struct {
			Code        string `json:"code"`
			RedirectURL string `json:"redirect_url"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "unauthenticated", env.Error.Code)
	require.Equal(t, "https://id.example.com/login?redirect=%2Ffriends", env.Error.RedirectURL)

	// Навигация браузера получает редирект.
	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "https://id.example.com/login?redirect=%2Fgroups", rr.Header().Get("Location"))
}

func TestRouter_Protected_WithLoginCookie(t *testing.T) {
	t.Parallel()

	h, mb := newTestRouter(t, "/api")

	mb.EXPECT().ListFriends(gomock.Any()).Return(models.FriendsList{
		Friends: []models.Friend{{"id": "1", "name": "Alice"}},
		Invites: []models.FriendInvite{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/friends", nil)
	req.AddCookie(&http.Cookie{Name: "login", Value: "abc"})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var list models.FriendsList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Friends, 1)
}

func TestRouter_PathParams(t *testing.T) {
	t.Parallel()

	h, mb := newTestRouter(t, "")

	mb.EXPECT().RemoveGroupMember(gomock.Any(), models.RemoveGroupMemberRequest{Group: "g1", Member: "u9"}).
		Return(models.MutationResult{Success: true}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/groups/g1/members/u9", nil)
	req.AddCookie(&http.Cookie{Name: "login", Value: "abc"})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

// PUT /session ставит cookie, которую следующий запрос видит как учётные данные.
func TestRouter_PutSession_SetsCookie(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPut, "/session", strings.NewReader(`{"login":"abc"}`))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "login" {
			found = true
			require.Equal(t, "abc", c.Value)
		}
	}
	require.True(t, found)
}
