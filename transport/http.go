// ABOUTME: Per-identity HTTP connections whose round tripper injects auth and identity headers
// ABOUTME: Bearer token wins over API key; agent_id and user_id headers are written verbatim

package transport

import (
	"net/http"
	"net/url"
	"strings"
)

// Header names used by the platform. They are not canonical MIME header keys,
// so they are written into the header map directly.
const (
	HeaderAgentID = "agent_id"
	HeaderUserID  = "user_id"
)

// Connection is an HTTP client bound to one identity. Every request sent
// through Client carries the credentials and identity headers.
type Connection struct {
	BaseURL  string
	Identity Identity
	Client   *http.Client
}

// URL joins path (and an optional query) onto the connection's base URL.
func (c *Connection) URL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Connection returns an HTTP connection scoped to id. It fails before any
// network I/O when neither an API key nor a token is configured.
func (t *Transport) Connection(id Identity) (*Connection, error) {
	secret, _, err := t.credential()
	if err != nil {
		return nil, err
	}

	return &Connection{
		BaseURL:  t.HTTPURI(),
		Identity: id,
		Client: t.client(&authRoundTripper{
			bearer:  secret,
			agentID: id.Agent(),
			userID:  id.UserID,
		}),
	}, nil
}

// PublicConnection returns a connection that does not require credentials.
// It still presents one when configured. Used for the login call.
func (t *Transport) PublicConnection() *Connection {
	secret, _, _ := t.credential()
	return &Connection{
		BaseURL: t.HTTPURI(),
		Client:  t.client(&authRoundTripper{bearer: secret}),
	}
}

// client clones the base client around rt.
func (t *Transport) client(rt *authRoundTripper) *http.Client {
	base := t.baseClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	rt.base = base

	return &http.Client{
		Transport:     rt,
		CheckRedirect: t.baseClient.CheckRedirect,
		Jar:           t.baseClient.Jar,
		Timeout:       t.baseClient.Timeout,
	}
}

// authRoundTripper attaches credentials and identity to a clone of each request.
type authRoundTripper struct {
	base    http.RoundTripper
	bearer  string
	agentID string
	userID  string
}

func (rt *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if rt.bearer != "" {
		r.Header.Set("Authorization", "Bearer "+rt.bearer)
	}
	if rt.agentID != "" {
		r.Header[HeaderAgentID] = []string{rt.agentID}
	}
	if rt.userID != "" {
		r.Header[HeaderUserID] = []string{rt.userID}
	}
	return rt.base.RoundTrip(r)
}
