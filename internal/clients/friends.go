package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	"github.com/pribylovaa/friends-gateway/internal/cache"
	"github.com/pribylovaa/friends-gateway/internal/metrics"
	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/internal/pkg/log"
)

// ListFriends - список друзей и входящих приглашений в каноническом виде.
func (c *Client) ListFriends(ctx context.Context) (models.FriendsList, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: c.ep.Friends.List})
	if err != nil {
		return models.FriendsList{}, err
	}

	return c.norm.Decode(body), nil
}

// SearchUsers ищет пользователей. Результат кэшируется по учётным
// данным запроса и строке поиска; сбой кэша не ломает поиск.
func (c *Client) SearchUsers(ctx context.Context, query string) (models.SearchUsersResponse, error) {
	l := log.From(ctx)
	key := cache.Key(auth.FromContext(ctx).AuthHeader(), query)

	if v, ok, err := c.cache.Get(ctx, key); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		l.Warn("search_cache_get_failed", slog.String("err", err.Error()))
	} else if ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return v, nil
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.ep.Friends.Search,
		query:    url.Values{"search": {query}},
	})
	if err != nil {
		return models.SearchUsersResponse{}, err
	}

	res, err := decodeSearch(c.ep.Friends.Search, body)
	if err != nil {
		return models.SearchUsersResponse{}, err
	}

	if err := c.cache.Set(ctx, key, res); err != nil {
		l.Warn("search_cache_set_failed", slog.String("err", err.Error()))
	}

	return res, nil
}

// decodeSearch принимает {results: [...]}, {data: ...} и голый массив.
func decodeSearch(endpoint string, body []byte) (models.SearchUsersResponse, error) {
	body = unwrapData(body)

	var list []models.User
	if err := json.Unmarshal(body, &list); err == nil {
		return models.SearchUsersResponse{Results: nonNil(list)}, nil
	}

	var res models.SearchUsersResponse
	if err := decode(endpoint, body, &res); err != nil {
		return models.SearchUsersResponse{}, err
	}
	res.Results = nonNil(res.Results)

	return res, nil
}

func (c *Client) InviteFriend(ctx context.Context, in models.InviteFriendRequest) (models.MutationResult, error) {
	req, err := jsonRequest(http.MethodPost, c.ep.Friends.Invite, in)
	if err != nil {
		return models.MutationResult{}, fmt.Errorf("invite friend: %w", err)
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return models.MutationResult{}, err
	}

	return mutation(body), nil
}

// CreateFriend - бэкенд принимает id и name в query, тело пустое.
func (c *Client) CreateFriend(ctx context.Context, in models.CreateFriendRequest) (models.MutationResult, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.ep.Friends.Create,
		query:    url.Values{"id": {in.ID}, "name": {in.Name}},
	})
	if err != nil {
		return models.MutationResult{}, err
	}

	return mutation(body), nil
}

func (c *Client) AcceptFriend(ctx context.Context, id string) (models.MutationResult, error) {
	return c.friendAction(ctx, c.ep.Friends.Accept, id)
}

// IgnoreFriend отклоняет входящее приглашение.
func (c *Client) IgnoreFriend(ctx context.Context, id string) (models.MutationResult, error) {
	return c.friendAction(ctx, c.ep.Friends.Ignore, id)
}

func (c *Client) DeleteFriend(ctx context.Context, id string) (models.MutationResult, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.ep.Friends.Delete,
		query:    url.Values{"id": {id}},
	})
	if err != nil {
		return models.MutationResult{}, err
	}

	return mutation(body), nil
}

func (c *Client) friendAction(ctx context.Context, endpoint, id string) (models.MutationResult, error) {
	req, err := jsonRequest(http.MethodPost, endpoint, models.FriendActionRequest{ID: id})
	if err != nil {
		return models.MutationResult{}, fmt.Errorf("friend action: %w", err)
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return models.MutationResult{}, err
	}

	return mutation(body), nil
}
