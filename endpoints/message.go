// ABOUTME: Message endpoint sending chat messages over HTTP or the websocket channel
// ABOUTME: Websocket sends surface notifications through a callback or a Stream

package endpoints

import (
	"context"

	"github.com/2389/cheshire-client/chat"
	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

type Message struct {
	m    *marshal.Marshaller
	chat *chat.Channel
}

func NewMessage(m *marshal.Marshaller, ch *chat.Channel) *Message {
	return &Message{m: m, chat: ch}
}

// SendHTTP posts msg and waits for the full answer.
func (e *Message) SendHTTP(ctx context.Context, msg models.Message, id transport.Identity) (*models.MessageOutput, error) {
	return marshal.PostJSON[models.MessageOutput](ctx, e.m, "/message", msg, id)
}

// SendWebSocket sends msg over a fresh websocket. onNotification receives each
// frame preceding the answer and may return an error to abort.
func (e *Message) SendWebSocket(
	ctx context.Context,
	msg models.Message,
	id transport.Identity,
	onNotification func(raw string) error,
) (*models.MessageOutput, error) {
	return e.chat.Send(ctx, msg, id, onNotification)
}

// Stream opens a websocket exchange and returns its frames for the caller to
// pull. The caller must Close the stream.
func (e *Message) Stream(ctx context.Context, msg models.Message, id transport.Identity) (*chat.Stream, error) {
	return e.chat.Open(ctx, msg, id)
}
