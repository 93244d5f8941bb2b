// ABOUTME: Websocket URI construction and dialing for the chat channel
// ABOUTME: Credentials travel as token/apikey query parameters; agent id selects the ws path

package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/2389/cheshire-client/apierror"
)

// FrameConn is the subset of a websocket connection the chat channel uses.
// *websocket.Conn satisfies it.
type FrameConn interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

// WebSocketURL builds the chat URI for id. The token wins over the API key.
// The path is ws/<agent_id> only when an agent id is given.
func (t *Transport) WebSocketURL(id Identity) (string, error) {
	secret, isToken, err := t.credential()
	if err != nil {
		return "", err
	}

	query := url.Values{}
	if isToken {
		query.Set("token", secret)
	} else {
		query.Set("apikey", secret)
	}
	if id.UserID != "" {
		query.Set("user_id", id.UserID)
	}

	scheme := "ws"
	if t.secure {
		scheme = "wss"
	}
	path := "ws"
	if id.AgentID != "" {
		path = "ws/" + url.PathEscape(id.AgentID)
	}

	uri := fmt.Sprintf("%s://%s/%s?%s", scheme, t.netloc(), path, query.Encode())
	if err := validateWebSocketURI(uri); err != nil {
		return "", &apierror.ConnectionError{URI: redact(uri), Err: err}
	}
	return uri, nil
}

func validateWebSocketURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		// url.Error echoes the input, which carries the credential.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("invalid websocket URI: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("invalid websocket URI scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return errors.New("invalid websocket URI: missing host")
	}
	return nil
}

// redact strips the query string so credentials never reach logs or errors.
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<malformed>"
	}
	u.RawQuery = ""
	return u.String()
}

// DialWebSocket opens a chat connection for id. Only the handshake is bounded;
// the returned connection has no read deadline and sends no pings, so a caller
// may wait as long as the agent needs.
func (t *Transport) DialWebSocket(ctx context.Context, id Identity) (FrameConn, error) {
	uri, err := t.WebSocketURL(id)
	if err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: t.handshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, uri, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("%w (HTTP %d)", err, resp.StatusCode)
		}
		return nil, &apierror.ConnectionError{URI: redact(uri), Err: err}
	}

	t.logger.Debug("websocket connected", "uri", redact(uri), "agent_id", id.AgentID, "user_id", id.UserID)
	return &wsConn{Conn: conn}, nil
}

// wsConn sends a close frame before tearing down the socket, once.
type wsConn struct {
	*websocket.Conn
	closeOnce sync.Once
	closeErr  error
}

func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.Conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		c.closeErr = c.Conn.Close()
	})
	return c.closeErr
}
