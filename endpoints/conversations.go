// ABOUTME: Conversation endpoints listing, renaming and deleting a user's chats
// ABOUTME: Every call is scoped to both the agent and the user of the identity

package endpoints

import (
	"context"
	"errors"
	"net/url"

	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// ErrNoAttributes is returned by UpdateAttributes when neither a name nor
// metadata is given.
var ErrNoAttributes = errors.New("either name or metadata must be provided")

type Conversations struct {
	m *marshal.Marshaller
}

func NewConversations(m *marshal.Marshaller) *Conversations {
	return &Conversations{m: m}
}

func (e *Conversations) History(ctx context.Context, chatID string, id transport.Identity) (*models.ConversationHistoryOutput, error) {
	return marshal.Get[models.ConversationHistoryOutput](ctx, e.m, conversationPath(chatID)+"/history", nil, id)
}

func (e *Conversations) List(ctx context.Context, id transport.Identity) ([]models.ConversationsResponse, error) {
	return marshal.GetList[models.ConversationsResponse](ctx, e.m, "/conversations", nil, id)
}

func (e *Conversations) Get(ctx context.Context, chatID string, id transport.Identity) (*models.ConversationsResponse, error) {
	return marshal.Get[models.ConversationsResponse](ctx, e.m, conversationPath(chatID), nil, id)
}

func (e *Conversations) Delete(ctx context.Context, chatID string, id transport.Identity) (*models.ConversationDeleteOutput, error) {
	return marshal.Delete[models.ConversationDeleteOutput](ctx, e.m, conversationPath(chatID), nil, id)
}

// UpdateAttributes renames the conversation or replaces its metadata. It
// fails with ErrNoAttributes, without a request, when attrs is empty.
func (e *Conversations) UpdateAttributes(
	ctx context.Context,
	chatID string,
	attrs models.ConversationAttributes,
	id transport.Identity,
) (*models.ConversationAttributesChangeOutput, error) {
	if attrs.Name == "" && len(attrs.Metadata) == 0 {
		return nil, ErrNoAttributes
	}
	return marshal.Put[models.ConversationAttributesChangeOutput](ctx, e.m, conversationPath(chatID), attrs, id)
}

func conversationPath(chatID string) string {
	return "/conversations/" + url.PathEscape(chatID)
}
