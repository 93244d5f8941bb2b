// ABOUTME: Tests for the Client facade
// ABOUTME: Checks option validation, token seeding and that endpoint groups share one transport

package cheshire

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

func serverOptions(t *testing.T, handler http.HandlerFunc) Options {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return Options{Host: u.Hostname(), Port: port}
}

func TestNewClient_RequiresHost(t *testing.T) {
	_, err := NewClient(Options{})

	var cfgErr *apierror.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewClient_NoCredentialsFailsOnFirstCall(t *testing.T) {
	c, err := NewClient(Options{Host: "localhost", Port: 1865})
	require.NoError(t, err)

	_, err = c.Settings.List(context.Background(), "", transport.Identity{})
	assert.ErrorIs(t, err, apierror.ErrMissingCredentials)
}

func TestClient_LoginTokenUsedByOtherGroups(t *testing.T) {
	auth := make(chan string, 4)
	opts := serverOptions(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/token":
			_, _ = io.WriteString(w, `{"access_token":"session","token_type":"bearer"}`)
		case "/rabbithole/allowed-mimetypes":
			auth <- r.Header.Get("Authorization")
			_, _ = io.WriteString(w, `{"allowed":["text/plain"]}`)
		default:
			http.NotFound(w, r)
		}
	})
	opts.APIKey = "api-key"

	c, err := NewClient(opts)
	require.NoError(t, err)

	_, err = c.RabbitHole.AllowedMimeTypes(context.Background(), transport.Identity{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer api-key", <-auth)

	_, err = c.Users.Token(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "session", c.Transport().Token())

	_, err = c.RabbitHole.AllowedMimeTypes(context.Background(), transport.Identity{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer session", <-auth)
}

func TestClient_OptionsToken(t *testing.T) {
	c, err := NewClient(Options{Host: "localhost", Token: "preset"})
	require.NoError(t, err)

	uri, err := c.Transport().WebSocketURL(transport.Identity{AgentID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost/ws/a1?token=preset", uri)

	c.SetToken("rotated")
	assert.Equal(t, "rotated", c.Transport().Token())
	assert.NotNil(t, c.Marshaller())
	assert.NotNil(t, c.Chat())
}

func TestClient_RemoteErrorSurfaces(t *testing.T) {
	opts := serverOptions(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"agent not found"}`, http.StatusNotFound)
	})
	opts.APIKey = "k"

	c, err := NewClient(opts)
	require.NoError(t, err)

	_, err = c.Message.SendHTTP(context.Background(),
		models.Message{MessageBase: models.MessageBase{Text: "hi"}}, transport.Identity{AgentID: "ghost"})
	assert.True(t, apierror.IsRemoteStatus(err, http.StatusNotFound))
}
