// ABOUTME: Conversation listing and attribute shapes
// ABOUTME: History entries reuse the memory package's ConversationHistoryItem

package models

// ConversationsResponse summarises one stored conversation.
type ConversationsResponse struct {
	ChatID      string         `json:"chat_id"`
	Name        string         `json:"name"`
	NumMessages int            `json:"num_messages"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   *float64       `json:"created_at"`
	UpdatedAt   *float64       `json:"updated_at"`
}

func (*ConversationsResponse) RequiredFields() []string {
	return []string{"chat_id", "name", "num_messages", "metadata"}
}

type ConversationDeleteOutput struct {
	Deleted bool `json:"deleted"`
}

func (*ConversationDeleteOutput) RequiredFields() []string {
	return []string{"deleted"}
}

type ConversationAttributesChangeOutput struct {
	Changed bool `json:"changed"`
}

func (*ConversationAttributesChangeOutput) RequiredFields() []string {
	return []string{"changed"}
}

// ConversationAttributes renames a conversation or replaces its metadata.
// At least one of the two must be set.
type ConversationAttributes struct {
	Name     string         `json:"name,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
