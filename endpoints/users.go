// ABOUTME: Login and user management endpoints
// ABOUTME: A successful login records the session token on the shared transport

package endpoints

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

type Users struct {
	m      *marshal.Marshaller
	logger *slog.Logger
}

func NewUsers(m *marshal.Marshaller, logger *slog.Logger) *Users {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Users{m: m, logger: logger}
}

// Token logs in with username and password. The returned access token is
// stored on the transport and used for every later call.
func (e *Users) Token(ctx context.Context, username, password string) (*models.TokenOutput, error) {
	out, err := marshal.Call[models.TokenOutput](ctx, e.m, marshal.Request{
		Method: http.MethodPost,
		Path:   "/auth/token",
		JSON:   map[string]string{"username": username, "password": password},
		Public: true,
	})
	if err != nil {
		return nil, err
	}

	e.m.Transport().SetToken(out.AccessToken)
	if exp, ok := transport.TokenExpiry(out.AccessToken); ok {
		e.logger.Info("logged in", "username", username, "expires_in", time.Until(exp).Round(time.Second))
	} else {
		e.logger.Info("logged in", "username", username)
	}
	return out, nil
}

// AvailablePermissions returns the permission catalogue as raw JSON.
func (e *Users) AvailablePermissions(ctx context.Context, id transport.Identity) (any, error) {
	return marshal.GetRaw(ctx, e.m, "/auth/available-permissions", nil, id)
}

// Create adds a user. Permissions are server defaults when nil.
func (e *Users) Create(ctx context.Context, in models.UserInput, id transport.Identity) (*models.UserOutput, error) {
	return marshal.PostJSON[models.UserOutput](ctx, e.m, "/users", in, id)
}

func (e *Users) List(ctx context.Context, id transport.Identity) ([]models.UserOutput, error) {
	return marshal.GetList[models.UserOutput](ctx, e.m, "/users", nil, id)
}

func (e *Users) Get(ctx context.Context, userID string, id transport.Identity) (*models.UserOutput, error) {
	return marshal.Get[models.UserOutput](ctx, e.m, "/users/"+url.PathEscape(userID), nil, id)
}

// Update changes only the fields set in in.
func (e *Users) Update(ctx context.Context, userID string, in models.UserInput, id transport.Identity) (*models.UserOutput, error) {
	return marshal.Put[models.UserOutput](ctx, e.m, "/users/"+url.PathEscape(userID), in, id)
}

// Delete removes a user and returns the removed account.
func (e *Users) Delete(ctx context.Context, userID string, id transport.Identity) (*models.UserOutput, error) {
	return marshal.Delete[models.UserOutput](ctx, e.m, "/users/"+url.PathEscape(userID), nil, id)
}
