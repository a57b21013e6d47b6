package auth

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

const bearerPrefix = "Bearer "

// DecodeDisplayUser извлекает данные для отображения из payload JWT.
// Это НЕ проверка токена: подпись не проверяется, валидирует бэкенд.
// Любой некорректный вход даёт nil.
func DecodeDisplayUser(token string) *models.AuthUser {
	token = strings.TrimSpace(strings.TrimPrefix(token, bearerPrefix))
	if token == "" {
		return nil
	}

	// Нужен только payload: заголовок и подпись не разбираем.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil
	}

	raw, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil
	}

	u := &models.AuthUser{
		Email:     claimString(claims, "email"),
		Name:      claimString(claims, "name"),
		AccountNo: claimString(claims, "accountNo"),
		Avatar:    claimString(claims, "avatar"),
		Role:      claimStrings(claims, "role"),
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		v := exp.Unix()
		u.Exp = &v
	}

	return u
}

// NameFromEmail строит отображаемое имя из локальной части адреса:
// "john.doe@x" -> "John Doe".
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})

	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}

	return strings.Join(parts, " ")
}

// ParseTokenCookie принимает как "сырой" токен, так и JSON-строку.
func ParseTokenCookie(v string) string {
	if v == "" {
		return ""
	}

	var parsed any
	if err := json.Unmarshal([]byte(v), &parsed); err == nil {
		if s, ok := parsed.(string); ok {
			return s
		}
	}

	return v
}

// bearer добавляет схему, если её ещё нет.
func bearer(cred string) string {
	if strings.HasPrefix(cred, bearerPrefix) {
		return cred
	}

	return bearerPrefix + cred
}

func claimString(c jwt.MapClaims, key string) string {
	s, _ := c[key].(string)
	return s
}

func claimStrings(c jwt.MapClaims, key string) []string {
	switch v := c[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
