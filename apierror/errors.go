// ABOUTME: Error taxonomy shared by the transport, marshaller and chat channel
// ABOUTME: Sentinels for errors.Is plus typed errors carrying URI, status or missing fields

package apierror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredentials is returned when a connection is requested with
	// neither an API key nor a session token configured.
	ErrMissingCredentials = errors.New("you must provide an apikey or a token")

	// ErrEmptyFrame is returned when the chat peer sends an empty frame.
	ErrEmptyFrame = errors.New("empty websocket frame")

	// ErrCancelled is returned when the caller's context ends mid exchange.
	ErrCancelled = errors.New("exchange cancelled")
)

// ConfigurationError reports a client that cannot issue calls as configured.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ConnectionError reports a malformed URI or a transport-level failure.
type ConnectionError struct {
	URI string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.URI == "" {
		return fmt.Sprintf("connection error: %v", e.Err)
	}
	return fmt.Sprintf("connection error (%s): %v", e.URI, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// EncodingError reports an outbound payload that could not be serialised.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("error encoding message: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ReceiveError reports a failed or empty websocket read.
type ReceiveError struct {
	Err error
}

func (e *ReceiveError) Error() string {
	return fmt.Sprintf("error receiving message: %v", e.Err)
}

func (e *ReceiveError) Unwrap() error { return e.Err }

// RemoteError carries a non-2xx response exactly as the platform sent it.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// DeserializationError reports a response body that does not satisfy the
// requested output type.
type DeserializationError struct {
	Type    string
	Missing []string
	Err     error
}

func (e *DeserializationError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return fmt.Sprintf("decoding %s: missing required fields: %s", e.Type, strings.Join(e.Missing, ", "))
	case e.Err != nil:
		return fmt.Sprintf("decoding %s: %v", e.Type, e.Err)
	default:
		return "decoding " + e.Type
	}
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// IsRemoteStatus reports whether err is a RemoteError with the given status.
func IsRemoteStatus(err error, status int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == status
}
