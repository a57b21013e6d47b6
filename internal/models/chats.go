package models

type Chat struct {
	ID       string `json:"id"`
	Identity string `json:"identity"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Updated  int64  `json:"updated"` // Unix UTC
}

type ChatMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ChatsResponse struct {
	Chats []Chat `json:"chats"`
}

type ChatMessage struct {
	ID      string `json:"id"`
	Chat    string `json:"chat"`
	Member  string `json:"member"`
	Name    string `json:"name"`
	Body    string `json:"body"`
	Created int64  `json:"created"` // Unix UTC
}

type ChatMessagesResponse struct {
	Messages []ChatMessage `json:"messages"`
}

// CreateChatRequest - participantIds уходят в multipart как "<id>=true".
type CreateChatRequest struct {
	Name           string   `json:"name"`
	ParticipantIDs []string `json:"participant_ids"`
}

type CreateChatResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Members []ChatMember   `json:"members"`
	Extra   map[string]any `json:"extra,omitempty"`
}

type SendMessageRequest struct {
	Chat string `json:"chat"`
	Body string `json:"body"`
}
