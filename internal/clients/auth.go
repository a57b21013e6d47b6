package clients

import (
	"context"
	"net/http"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

// Me - профиль текущего пользователя.
func (c *Client) Me(ctx context.Context) (models.AuthUser, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: c.ep.Auth.Me})
	if err != nil {
		return models.AuthUser{}, err
	}

	var out models.AuthUser
	if err := decodeData(c.ep.Auth.Me, body, &out); err != nil {
		return models.AuthUser{}, err
	}

	return out, nil
}

// Logout - выход на бэкенде. Результат вызывающий трактует как best-effort.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, request{method: http.MethodPost, endpoint: c.ep.Auth.Logout})
	return err
}
