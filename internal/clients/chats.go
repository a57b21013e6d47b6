package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

// CreateChat - multipart-форма: name и по полю "<id>=true" на участника.
func (c *Client) CreateChat(ctx context.Context, in models.CreateChatRequest) (models.CreateChatResponse, error) {
	const op = "internal/clients/CreateChat"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("name", in.Name); err != nil {
		return models.CreateChatResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, id := range in.ParticipantIDs {
		if err := mw.WriteField(id, "true"); err != nil {
			return models.CreateChatResponse{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := mw.Close(); err != nil {
		return models.CreateChatResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	body, err := c.do(ctx, request{
		method:      http.MethodPost,
		endpoint:    c.ep.Chat.Create,
		body:        &buf,
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return models.CreateChatResponse{}, err
	}

	body = unwrapData(body)

	var out models.CreateChatResponse
	if err := decode(c.ep.Chat.Create, body, &out); err != nil {
		return models.CreateChatResponse{}, err
	}

	// неизвестные поля сохраняем в Extra
	var all map[string]any
	if err := json.Unmarshal(body, &all); err == nil {
		for _, k := range []string{"id", "name", "members"} {
			delete(all, k)
		}
		if len(all) > 0 {
			out.Extra = all
		}
	}

	return out, nil
}

func (c *Client) ListChats(ctx context.Context) (models.ChatsResponse, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, endpoint: c.ep.Chat.List})
	if err != nil {
		return models.ChatsResponse{}, err
	}

	body = unwrapData(body)

	var list []models.Chat
	if err := json.Unmarshal(body, &list); err == nil {
		return models.ChatsResponse{Chats: nonNil(list)}, nil
	}

	var out models.ChatsResponse
	if err := decode(c.ep.Chat.List, body, &out); err != nil {
		return models.ChatsResponse{}, err
	}
	out.Chats = nonNil(out.Chats)

	return out, nil
}

func (c *Client) ChatMessages(ctx context.Context, chatID string) (models.ChatMessagesResponse, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.ep.Chat.Messages,
		query:    url.Values{"chat": {chatID}},
	})
	if err != nil {
		return models.ChatMessagesResponse{}, err
	}

	body = unwrapData(body)

	var list []models.ChatMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return models.ChatMessagesResponse{Messages: nonNil(list)}, nil
	}

	var out models.ChatMessagesResponse
	if err := decode(c.ep.Chat.Messages, body, &out); err != nil {
		return models.ChatMessagesResponse{}, err
	}
	out.Messages = nonNil(out.Messages)

	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, in models.SendMessageRequest) (models.ChatMessage, error) {
	req, err := jsonRequest(http.MethodPost, c.ep.Chat.Send, in)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("send message: %w", err)
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return models.ChatMessage{}, err
	}

	var out models.ChatMessage
	if err := decodeData(c.ep.Chat.Send, body, &out); err != nil {
		return models.ChatMessage{}, err
	}

	return out, nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}

	return in
}
