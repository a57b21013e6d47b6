// auth - учётные данные шлюза: cookie как источник истины и кэш в памяти
// запроса, который с ними синхронизируется.
package auth

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/internal/pkg/redact"
)

// State - кэш учётных данных в памяти.
type State struct {
	RawLogin    string
	AccessToken string
	User        *models.AuthUser
	Initialized bool
}

type profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Store - учётные данные текущего запроса. Все изменения идут через commit,
// поэтому cookie и память не расходятся.
type Store struct {
	mu    sync.Mutex
	jar   CookieJar
	names CookieNames
	log   *slog.Logger
	state State
}

// NewStore читает начальное состояние из cookie; Initialized остаётся false
// до первого Sync. log == nil отключает диагностику (prod).
func NewStore(jar CookieJar, names CookieNames, log *slog.Logger) *Store {
	s := &Store{jar: jar, names: names, log: log}

	login, token, prof := s.readCookies()
	s.state = State{
		RawLogin:    login,
		AccessToken: token,
		User:        s.resolveUser(token, prof, nil),
	}

	return s
}

// AuthHeader - значение заголовка Authorization или "" без учётных данных.
// Память важнее cookie; login важнее token.
func (s *Store) AuthHeader() string {
	if s == nil {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	login := s.state.RawLogin
	if login == "" {
		login, _ = s.jar.Get(s.names.Login)
	}

	token := s.state.AccessToken
	if token == "" {
		raw, _ := s.jar.Get(s.names.Token)
		token = ParseTokenCookie(raw)
	}

	cred := login
	if cred == "" {
		cred = token
	}
	if cred == "" {
		return ""
	}

	return bearer(cred)
}

// Sync сверяет память с cookie. При расхождении побеждают cookie;
// иначе только выставляется Initialized. Повторный вызов ничего не меняет.
func (s *Store) Sync() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	login, token, prof := s.readCookies()

	storeEmail := ""
	if s.state.User != nil {
		storeEmail = s.state.User.Email
	}

	if login == s.state.RawLogin && token == s.state.AccessToken && prof.Email == storeEmail {
		next := s.state
		next.Initialized = true
		s.commit(next, false)
		return
	}

	s.debug("auth_state_resynced",
		slog.Bool("login_changed", login != s.state.RawLogin),
		slog.Bool("token_changed", token != s.state.AccessToken),
	)

	s.commit(State{
		RawLogin:    login,
		AccessToken: token,
		User:        s.resolveUser(token, prof, s.state.User),
		Initialized: true,
	}, false)
}

// SetCredential сохраняет учётные данные в память и cookie.
// Пустое значение удаляет соответствующую cookie.
func (s *Store) SetCredential(login, token string) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(State{
		RawLogin:    login,
		AccessToken: token,
		User:        s.resolveUser(token, s.readProfile(), s.state.User),
		Initialized: true,
	}, true)
}

// SetUser меняет только отображаемого пользователя.
func (s *Store) SetUser(u *models.AuthUser) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.User = u
	s.commit(next, false)
}

// Clear удаляет все учётные данные: login, token и профиль.
func (s *Store) Clear() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.jar.Remove(s.names.Profile)
	s.commit(State{Initialized: true}, true)
}

func (s *Store) IsAuthenticated() bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated()
}

// Snapshot - копия текущего состояния.
func (s *Store) Snapshot() State {
	if s == nil {
		return State{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}

	return st
}

// Session - состояние для ответа фронту, без самих учётных данных.
// nil-Store даёт пустую неаутентифицированную сессию.
func (s *Store) Session() models.Session {
	st := s.Snapshot()

	return models.Session{
		Authenticated: st.RawLogin != "" || st.AccessToken != "",
		Initialized:   st.Initialized,
		User:          st.User,
	}
}

func (s *Store) authenticated() bool {
	return s.state.RawLogin != "" || s.state.AccessToken != ""
}

// commit - единственная точка записи состояния. persist=true переносит
// login/token в cookie.
func (s *Store) commit(next State, persist bool) {
	if persist {
		s.persist(s.names.Login, next.RawLogin)
		s.persist(s.names.Token, next.AccessToken)
	}

	s.state = next
}

func (s *Store) persist(name, value string) {
	if value == "" {
		s.jar.Remove(name)
		return
	}

	s.jar.Set(name, value)
}

func (s *Store) readCookies() (login, token string, prof profile) {
	login, _ = s.jar.Get(s.names.Login)
	raw, _ := s.jar.Get(s.names.Token)

	return login, ParseTokenCookie(raw), s.readProfile()
}

func (s *Store) readProfile() profile {
	raw, ok := s.jar.Get(s.names.Profile)
	if !ok || raw == "" {
		return profile{}
	}

	var p profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.debug("profile_cookie_invalid", slog.String("err", err.Error()))
		return profile{}
	}

	return p
}

// resolveUser: claims токена -> профильная cookie -> fallback.
func (s *Store) resolveUser(token string, prof profile, fallback *models.AuthUser) *models.AuthUser {
	if token != "" {
		u := DecodeDisplayUser(token)
		if u == nil {
			s.debug("token_decode_failed")
		}

		if u != nil && u.Email != "" {
			if u.Name == "" {
				u.Name = prof.Name
			}
			if u.Name == "" {
				u.Name = NameFromEmail(u.Email)
			}
			return u
		}
	}

	if prof.Email != "" {
		name := prof.Name
		if name == "" {
			name = NameFromEmail(prof.Email)
		}
		return &models.AuthUser{Email: prof.Email, Name: name}
	}

	return fallback
}

func (s *Store) debug(msg string, attrs ...any) {
	if s.log == nil {
		return
	}

	if s.state.User != nil {
		attrs = append(attrs, slog.String("user", redact.Email(s.state.User.Email)))
	}

	s.log.Debug(msg, attrs...)
}
