// ABOUTME: Marshaller issuing authenticated HTTP calls and returning raw responses
// ABOUTME: Encodes JSON or multipart bodies locally before a connection is requested

package marshal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/transport"
)

// HeaderRequestID carries the id logged for each call so it can be matched
// against server logs.
const HeaderRequestID = "X-Request-Id"

// Request describes one HTTP call. At most one of JSON and Multipart is set.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	JSON      any
	Multipart *Multipart
	Identity  transport.Identity

	// Public sends the call without requiring credentials. Only login uses it.
	Public bool
}

// Response is a successful reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Marshaller issues requests through a transport.
type Marshaller struct {
	transport *transport.Transport
	logger    *slog.Logger
}

// New creates a Marshaller. A nil logger discards output.
func New(t *transport.Transport, logger *slog.Logger) *Marshaller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Marshaller{transport: t, logger: logger}
}

// Transport returns the transport requests are issued through.
func (m *Marshaller) Transport() *transport.Transport {
	return m.transport
}

// Do sends req and returns the reply when its status is 2xx.
func (m *Marshaller) Do(ctx context.Context, req Request) (*Response, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	var conn *transport.Connection
	if req.Public {
		conn = m.transport.PublicConnection()
	} else {
		conn, err = m.transport.Connection(req.Identity)
		if err != nil {
			return nil, err
		}
	}

	target := conn.URL(req.Path, req.Query)
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, &apierror.ConnectionError{URI: conn.URL(req.Path, nil), Err: err}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	httpReq.Header.Set(HeaderRequestID, requestID)

	logger := m.logger.With(
		"request_id", requestID,
		"method", req.Method,
		"path", req.Path,
		"agent_id", req.Identity.Agent(),
	)
	logger.Debug("request started")
	start := time.Now()

	resp, err := conn.Client.Do(httpReq)
	if err != nil {
		logger.Debug("request failed", "error", err, "duration", time.Since(start))
		return nil, &apierror.ConnectionError{URI: conn.URL(req.Path, nil), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierror.ConnectionError{URI: conn.URL(req.Path, nil), Err: err}
	}

	logger.Debug("request finished",
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierror.RemoteError{StatusCode: resp.StatusCode, Body: data}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// encodeBody serialises the request body. Multipart files are opened, copied
// and closed here, before any connection exists.
func encodeBody(req Request) (io.Reader, string, error) {
	switch {
	case req.Multipart != nil && req.JSON != nil:
		req.Multipart.closeContents()
		return nil, "", &apierror.EncodingError{Err: errors.New("request sets both JSON and multipart bodies")}
	case req.Multipart != nil:
		return req.Multipart.encode()
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", &apierror.EncodingError{Err: err}
		}
		return bytes.NewReader(data), "application/json", nil
	default:
		return nil, "", nil
	}
}
