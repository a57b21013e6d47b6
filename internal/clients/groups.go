package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

func (c *Client) ListGroups(ctx context.Context) (models.GroupsResponse, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: c.ep.Groups.List})
	if err != nil {
		return models.GroupsResponse{}, err
	}

	body = unwrapData(body)

	var list []models.Group
	if err := json.Unmarshal(body, &list); err == nil {
		return models.GroupsResponse{Groups: nonNil(list)}, nil
	}

	var out models.GroupsResponse
	if err := decode(c.ep.Groups.List, body, &out); err != nil {
		return models.GroupsResponse{}, err
	}
	out.Groups = nonNil(out.Groups)

	return out, nil
}

func (c *Client) GetGroup(ctx context.Context, id string) (models.GroupDetail, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.ep.Groups.Get,
		query:    url.Values{"id": {id}},
	})
	if err != nil {
		return models.GroupDetail{}, err
	}

	var out models.GroupDetail
	if err := decodeData(c.ep.Groups.Get, body, &out); err != nil {
		return models.GroupDetail{}, err
	}
	out.Members = nonNil(out.Members)

	return out, nil
}

func (c *Client) CreateGroup(ctx context.Context, in models.CreateGroupRequest) (models.Group, error) {
	return c.groupWrite(ctx, c.ep.Groups.Create, in)
}

func (c *Client) UpdateGroup(ctx context.Context, in models.UpdateGroupRequest) (models.Group, error) {
	return c.groupWrite(ctx, c.ep.Groups.Update, in)
}

func (c *Client) DeleteGroup(ctx context.Context, id string) (models.MutationResult, error) {
	return c.groupMutation(ctx, c.ep.Groups.Delete, map[string]string{"id": id})
}

func (c *Client) AddGroupMember(ctx context.Context, in models.AddGroupMemberRequest) (models.MutationResult, error) {
	return c.groupMutation(ctx, c.ep.Groups.MemberAdd, in)
}

func (c *Client) RemoveGroupMember(ctx context.Context, in models.RemoveGroupMemberRequest) (models.MutationResult, error) {
	return c.groupMutation(ctx, c.ep.Groups.MemberRemove, in)
}

func (c *Client) groupWrite(ctx context.Context, endpoint string, in any) (models.Group, error) {
	req, err := jsonRequest(http.MethodPost, endpoint, in)
	if err != nil {
		return models.Group{}, fmt.Errorf("group write: %w", err)
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return models.Group{}, err
	}

	var out models.Group
	if err := decodeData(endpoint, body, &out); err != nil {
		return models.Group{}, err
	}

	return out, nil
}

func (c *Client) groupMutation(ctx context.Context, endpoint string, in any) (models.MutationResult, error) {
	req, err := jsonRequest(http.MethodPost, endpoint, in)
	if err != nil {
		return models.MutationResult{}, fmt.Errorf("group mutation: %w", err)
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return models.MutationResult{}, err
	}

	return mutation(body), nil
}
