package models

type MemberType string

const (
	MemberUser  MemberType = "user"
	MemberGroup MemberType = "group"
)

func (t MemberType) Valid() bool { return t == MemberUser || t == MemberGroup }

type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Created     int64  `json:"created"` // Unix UTC
}

type GroupMember struct {
	Member string     `json:"member"`
	Name   string     `json:"name"`
	Type   MemberType `json:"type"`
}

type GroupsResponse struct {
	Groups []Group `json:"groups"`
}

type GroupDetail struct {
	Group   Group         `json:"group"`
	Members []GroupMember `json:"members"`
}

type CreateGroupRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateGroupRequest - поля опциональные; id берётся из пути.
type UpdateGroupRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type AddGroupMemberRequest struct {
	Group  string     `json:"group"`
	Member string     `json:"member"`
	Type   MemberType `json:"type"`
}

type RemoveGroupMemberRequest struct {
	Group  string `json:"group"`
	Member string `json:"member"`
}
