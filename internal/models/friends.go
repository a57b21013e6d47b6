// Модели REST-слоя шлюза и бэкенда друзей/групп/чатов.
package models

import (
	"fmt"
	"net/url"
	"strings"
)

const avatarBase = "https://api.dicebear.com/7.x/funemoji/svg?backgroundColor=b6e3f4,c0aede,d1d4f9&backgroundType=gradientLinear&radius=50"

// Friend - запись друга как есть от бэкенда; как минимум id и name,
// прочие поля пробрасываются без изменений.
type Friend map[string]any

// FriendInvite структурно совпадает с Friend.
type FriendInvite = Friend

func (f Friend) ID() string   { return stringField(f, "id") }
func (f Friend) Name() string { return stringField(f, "name") }

// FriendsList - канонический вид ответа "список друзей".
type FriendsList struct {
	Friends []Friend       `json:"friends"`
	Invites []FriendInvite `json:"invites"`
	Sent    []FriendInvite `json:"sent,omitempty"`
	Total   *int           `json:"total,omitempty"`
	Page    *int           `json:"page,omitempty"`
	Limit   *int           `json:"limit,omitempty"`
}

// Filter оставляет записи, чьё имя содержит query без учёта регистра.
// Пустой query возвращает список без изменений.
func (l FriendsList) Filter(query string) FriendsList {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return l
	}

	match := func(in []Friend) []Friend {
		out := make([]Friend, 0, len(in))
		for _, f := range in {
			if strings.Contains(strings.ToLower(f.Name()), q) {
				out = append(out, f)
			}
		}

		return out
	}

	l.Friends = match(l.Friends)
	l.Invites = match(l.Invites)
	if len(l.Sent) > 0 {
		l.Sent = match(l.Sent)
	}

	return l
}

// WithAvatars дописывает avatar тем записям, у которых его нет.
func (l FriendsList) WithAvatars() FriendsList {
	fill := func(in []Friend) {
		for _, f := range in {
			if f == nil {
				continue
			}
			if v, ok := f["avatar"].(string); ok && v != "" {
				continue
			}

			seed := f.Name()
			if seed == "" {
				seed = f.ID()
			}
			f["avatar"] = AvatarURL(seed)
		}
	}

	fill(l.Friends)
	fill(l.Invites)
	fill(l.Sent)

	return l
}

// AvatarURL - детерминированный аватар по seed.
func AvatarURL(seed string) string {
	if seed == "" {
		seed = "friends"
	}

	return avatarBase + "&seed=" + url.QueryEscape(seed)
}

// User - результат поиска пользователей (сквозная запись).
type User map[string]any

func (u User) ID() string   { return stringField(u, "id") }
func (u User) Name() string { return stringField(u, "name") }

type SearchUsersResponse struct {
	Results []User `json:"results"`
}

type InviteFriendRequest struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type CreateFriendRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FriendActionRequest - accept/ignore/delete по id.
type FriendActionRequest struct {
	ID string `json:"id"`
}

// StartChatRequest - имя друга для названия чата.
type StartChatRequest struct {
	Name string `json:"name"`
}

// StartChatResponse - созданный чат и адрес микро-приложения чата.
type StartChatResponse struct {
	Chat        CreateChatResponse `json:"chat"`
	RedirectURL string             `json:"redirect_url,omitempty"`
}

// MutationResult - типовой ответ мутаций бэкенда.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
