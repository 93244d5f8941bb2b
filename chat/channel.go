// ABOUTME: Chat channel that opens one websocket exchange per message
// ABOUTME: Send wraps Open and Next with a notification callback and returns the decoded answer

package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// Dialer opens websocket connections for an identity. *transport.Transport
// satisfies it.
type Dialer interface {
	DialWebSocket(ctx context.Context, id transport.Identity) (transport.FrameConn, error)
}

// Channel starts chat exchanges.
type Channel struct {
	dialer Dialer
	logger *slog.Logger
}

// New creates a Channel. A nil logger discards output.
func New(d Dialer, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Channel{dialer: d, logger: logger}
}

// Open encodes msg, connects for id and sends the message. The message is
// encoded before dialing, so an unencodable message never opens a connection.
// The returned Stream owns the connection; callers must Close it.
func (c *Channel) Open(ctx context.Context, msg models.Message, id transport.Identity) (*Stream, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, &apierror.EncodingError{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apierror.ErrCancelled, err)
	}

	conn, err := c.dialer.DialWebSocket(ctx, id)
	if err != nil {
		return nil, err
	}

	s := newStream(ctx, conn, c.logger.With("agent_id", id.AgentID, "user_id", id.UserID))

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", apierror.ErrCancelled, ctxErr)
		}
		return nil, &apierror.ConnectionError{Err: fmt.Errorf("sending message: %w", err)}
	}

	s.logger.Debug("chat message sent", "bytes", len(data))
	return s, nil
}

// Send runs a whole exchange. onNotification, when non-nil, receives every
// frame before the answer, in order, before Send returns. A callback error
// aborts the exchange, closes the connection and is returned wrapped.
func (c *Channel) Send(
	ctx context.Context,
	msg models.Message,
	id transport.Identity,
	onNotification func(raw string) error,
) (*models.MessageOutput, error) {
	s, err := c.Open(ctx, msg, id)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	for {
		f, err := s.Next()
		if err != nil {
			return nil, err
		}
		if f.Terminal {
			break
		}
		if onNotification == nil {
			continue
		}
		if err := onNotification(f.Raw); err != nil {
			s.Close()
			return nil, fmt.Errorf("notification callback: %w", err)
		}
	}

	return s.Result()
}
