// ABOUTME: Authenticated transport owning host, scheme and credentials for every call
// ABOUTME: Hands out per-identity HTTP connections and websocket dials without remembering identity

package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/2389/cheshire-client/apierror"
)

// DefaultAgentID is sent in the agent_id header when the caller names no agent.
const DefaultAgentID = "agent"

// DefaultHandshakeTimeout bounds the websocket opening handshake only; reads
// on an established chat connection never time out.
const DefaultHandshakeTimeout = 30 * time.Second

// Identity scopes a single call to an agent and, optionally, a user.
// It is passed explicitly through every call and never stored on the Transport.
type Identity struct {
	AgentID string
	UserID  string
}

// Agent returns the agent id to send, falling back to DefaultAgentID.
func (i Identity) Agent() string {
	if i.AgentID == "" {
		return DefaultAgentID
	}
	return i.AgentID
}

// Options configures a Transport.
type Options struct {
	Host   string
	Port   int
	APIKey string
	// Secure selects https/wss instead of http/ws.
	Secure bool

	// HTTPClient is the base client cloned for every connection. Its
	// Transport, Timeout, Jar and CheckRedirect are preserved.
	HTTPClient       *http.Client
	HandshakeTimeout time.Duration
	Logger           *slog.Logger
}

// Transport owns the long-lived credentials. The session token is the only
// mutable field and is guarded by mu.
type Transport struct {
	host             string
	port             int
	apiKey           string
	secure           bool
	baseClient       *http.Client
	handshakeTimeout time.Duration
	logger           *slog.Logger

	mu    sync.RWMutex
	token string
}

// New validates opts and builds a Transport. No network I/O happens here.
func New(opts Options) (*Transport, error) {
	if opts.Host == "" {
		return nil, &apierror.ConfigurationError{Err: errors.New("host is required")}
	}
	if opts.Port < 0 || opts.Port > 65535 {
		return nil, &apierror.ConfigurationError{Err: fmt.Errorf("port %d out of range", opts.Port)}
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	handshake := opts.HandshakeTimeout
	if handshake == 0 {
		handshake = DefaultHandshakeTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Transport{
		host:             opts.Host,
		port:             opts.Port,
		apiKey:           opts.APIKey,
		secure:           opts.Secure,
		baseClient:       client,
		handshakeTimeout: handshake,
		logger:           logger,
	}, nil
}

// SetToken records a session token. Once set it is preferred over the API key
// for every subsequent connection.
func (t *Transport) SetToken(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()

	if exp, ok := TokenExpiry(token); ok {
		t.logger.Debug("session token set", "expires_at", exp.Format(time.RFC3339))
	} else {
		t.logger.Debug("session token set")
	}
}

// Token returns the current session token, if any.
func (t *Transport) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// credential returns the secret to present and whether it is a session token.
func (t *Transport) credential() (secret string, isToken bool, err error) {
	if token := t.Token(); token != "" {
		return token, true, nil
	}
	if t.apiKey != "" {
		return t.apiKey, false, nil
	}
	return "", false, &apierror.ConfigurationError{Err: apierror.ErrMissingCredentials}
}

// netloc returns host[:port].
func (t *Transport) netloc() string {
	if t.port == 0 {
		return t.host
	}
	return t.host + ":" + strconv.Itoa(t.port)
}

// HTTPURI returns the base URI for HTTP calls, e.g. "http://localhost:1865".
func (t *Transport) HTTPURI() string {
	scheme := "http"
	if t.secure {
		scheme = "https"
	}
	return scheme + "://" + t.netloc()
}

// Logger returns the logger the transport was built with.
func (t *Transport) Logger() *slog.Logger {
	return t.logger
}
