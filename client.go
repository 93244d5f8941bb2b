// ABOUTME: Client facade wiring the transport, marshaller, chat channel and endpoint groups
// ABOUTME: One Client is safe to share; identity is passed per call, never stored

package cheshire

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/cheshire-client/chat"
	"github.com/2389/cheshire-client/endpoints"
	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/transport"
)

// Options configures a Client.
type Options struct {
	Host   string
	Port   int
	APIKey string
	Secure bool

	// Token, when set, is used as the session token from the start.
	Token string

	HTTPClient       *http.Client
	HandshakeTimeout time.Duration
	Logger           *slog.Logger
}

// Client groups every endpoint of a Cheshire Cat instance.
type Client struct {
	transport *transport.Transport
	marshal   *marshal.Marshaller
	chat      *chat.Channel

	Message       *endpoints.Message
	Users         *endpoints.Users
	Settings      *endpoints.Settings
	Memory        *endpoints.Memory
	Conversations *endpoints.Conversations
	Plugins       *endpoints.Plugins
	RabbitHole    *endpoints.RabbitHole
	Factories     *endpoints.Factories
	Admins        *endpoints.Admins
}

// NewClient builds a Client. It performs no network I/O; a missing credential
// is reported by the first call that needs one.
func NewClient(opts Options) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	t, err := transport.New(transport.Options{
		Host:             opts.Host,
		Port:             opts.Port,
		APIKey:           opts.APIKey,
		Secure:           opts.Secure,
		HTTPClient:       opts.HTTPClient,
		HandshakeTimeout: opts.HandshakeTimeout,
		Logger:           logger.With("component", "transport"),
	})
	if err != nil {
		return nil, err
	}
	if opts.Token != "" {
		t.SetToken(opts.Token)
	}

	m := marshal.New(t, logger.With("component", "marshal"))
	ch := chat.New(t, logger.With("component", "chat"))

	return &Client{
		transport: t,
		marshal:   m,
		chat:      ch,

		Message:       endpoints.NewMessage(m, ch),
		Users:         endpoints.NewUsers(m, logger.With("component", "users")),
		Settings:      endpoints.NewSettings(m),
		Memory:        endpoints.NewMemory(m),
		Conversations: endpoints.NewConversations(m),
		Plugins:       endpoints.NewPlugins(m),
		RabbitHole:    endpoints.NewRabbitHole(m),
		Factories:     endpoints.NewFactories(m),
		Admins:        endpoints.NewAdmins(m),
	}, nil
}

// SetToken records a session token that supersedes the API key.
func (c *Client) SetToken(token string) {
	c.transport.SetToken(token)
}

func (c *Client) Transport() *transport.Transport {
	return c.transport
}

func (c *Client) Marshaller() *marshal.Marshaller {
	return c.marshal
}

func (c *Client) Chat() *chat.Channel {
	return c.chat
}
