// ABOUTME: Generic call helpers pairing a Request shape with Decode
// ABOUTME: One helper per HTTP verb and body kind used by the endpoint groups

package marshal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/transport"
)

// Call sends req and decodes the reply into T.
func Call[T any](ctx context.Context, m *Marshaller, req Request) (*T, error) {
	resp, err := m.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return Decode[T](resp.Body)
}

// Get issues a GET and decodes the reply into T.
func Get[T any](ctx context.Context, m *Marshaller, path string, query url.Values, id transport.Identity) (*T, error) {
	return Call[T](ctx, m, Request{Method: http.MethodGet, Path: path, Query: query, Identity: id})
}

// GetList issues a GET whose reply is a JSON array of T.
func GetList[T any](ctx context.Context, m *Marshaller, path string, query url.Values, id transport.Identity) ([]T, error) {
	resp, err := m.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Identity: id})
	if err != nil {
		return nil, err
	}
	return DecodeList[T](resp.Body)
}

// GetRaw issues a GET and returns the reply decoded as generic JSON.
func GetRaw(ctx context.Context, m *Marshaller, path string, query url.Values, id transport.Identity) (any, error) {
	resp, err := m.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Identity: id})
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &apierror.DeserializationError{Type: "any", Err: err}
	}
	return out, nil
}

// PostJSON issues a POST with payload as the JSON body. A nil payload sends
// no body.
func PostJSON[T any](ctx context.Context, m *Marshaller, path string, payload any, id transport.Identity) (*T, error) {
	return Call[T](ctx, m, Request{Method: http.MethodPost, Path: path, JSON: payload, Identity: id})
}

// PostMultipart issues a multipart POST.
func PostMultipart[T any](ctx context.Context, m *Marshaller, path string, body *Multipart, id transport.Identity) (*T, error) {
	return Call[T](ctx, m, Request{Method: http.MethodPost, Path: path, Multipart: body, Identity: id})
}

// PostMultipartMap issues a multipart POST whose reply maps keys to T.
func PostMultipartMap[T any](ctx context.Context, m *Marshaller, path string, body *Multipart, id transport.Identity) (map[string]T, error) {
	resp, err := m.Do(ctx, Request{Method: http.MethodPost, Path: path, Multipart: body, Identity: id})
	if err != nil {
		return nil, err
	}
	return DecodeMap[T](resp.Body)
}

// Put issues a PUT with payload as the JSON body.
func Put[T any](ctx context.Context, m *Marshaller, path string, payload any, id transport.Identity) (*T, error) {
	return Call[T](ctx, m, Request{Method: http.MethodPut, Path: path, JSON: payload, Identity: id})
}

// Delete issues a DELETE. payload, when non-nil, is sent as the JSON body.
func Delete[T any](ctx context.Context, m *Marshaller, path string, payload any, id transport.Identity) (*T, error) {
	return Call[T](ctx, m, Request{Method: http.MethodDelete, Path: path, JSON: payload, Identity: id})
}
