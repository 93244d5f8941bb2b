// ABOUTME: Stream of frames from one chat exchange, ending at the answer frame
// ABOUTME: The connection is closed exactly once on answer, error, cancellation or Close

package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/tidwall/gjson"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// terminalMarker identifies the answer frame. The match is on the raw text,
// so the key and value must appear exactly like this.
const terminalMarker = `"type":"chat"`

// ErrClosed is returned by Next after the caller closed the stream.
var ErrClosed = errors.New("chat stream closed")

// Frame is one websocket message. Type is the frame's top-level "type"
// value, empty when absent or when the frame is not JSON. Terminal marks the
// answer.
type Frame struct {
	Raw      string
	Type     string
	Terminal bool
}

// Stream yields the frames of one exchange. Next is not safe for concurrent
// use; Close may be called from any goroutine.
type Stream struct {
	ctx    context.Context
	conn   transport.FrameConn
	logger *slog.Logger
	stop   func() bool

	closeOnce sync.Once
	closeErr  error
	closed    atomic.Bool

	done          bool
	err           error
	terminal      []byte
	notifications int
}

func newStream(ctx context.Context, conn transport.FrameConn, logger *slog.Logger) *Stream {
	s := &Stream{ctx: ctx, conn: conn, logger: logger}
	s.stop = context.AfterFunc(ctx, func() {
		s.logger.Debug("chat exchange cancelled")
		s.closeConn()
	})
	return s
}

// Next reads the next frame. After the answer it returns io.EOF; after a
// failure it keeps returning that failure.
func (s *Stream) Next() (Frame, error) {
	if s.done {
		return Frame{}, s.err
	}
	if s.closed.Load() {
		return s.fail(ErrClosed)
	}

	_, data, err := s.conn.ReadMessage()
	if err != nil {
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			return s.fail(fmt.Errorf("%w: %w", apierror.ErrCancelled, ctxErr))
		}
		if s.closed.Load() {
			return s.fail(ErrClosed)
		}
		return s.fail(&apierror.ReceiveError{Err: err})
	}
	if len(data) == 0 {
		return s.fail(&apierror.ReceiveError{Err: apierror.ErrEmptyFrame})
	}

	raw := string(data)
	frame := Frame{Raw: raw, Type: frameType(raw)}
	if !strings.Contains(raw, terminalMarker) {
		s.notifications++
		return frame, nil
	}

	s.terminal = data
	s.finish(io.EOF)
	s.logger.Debug("chat answer received",
		"notifications", s.notifications,
		"bytes", len(data),
	)
	frame.Terminal = true
	return frame, nil
}

func frameType(raw string) string {
	if !gjson.Valid(raw) {
		return ""
	}
	return gjson.Get(raw, "type").String()
}

// Frames ranges over the remaining frames, ending after the answer. A failure
// is yielded once as the final element.
func (s *Stream) Frames() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		for {
			f, err := s.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Frame{}, err)
				return
			}
			if !yield(f, nil) || f.Terminal {
				return
			}
		}
	}
}

// Result reads up to the answer, discarding notifications, and decodes it.
func (s *Stream) Result() (*models.MessageOutput, error) {
	for s.terminal == nil {
		if _, err := s.Next(); err != nil {
			return nil, err
		}
	}
	return marshal.Decode[models.MessageOutput](s.terminal)
}

// Close releases the connection. It is safe to call more than once.
func (s *Stream) Close() error {
	s.closed.Store(true)
	s.stop()
	return s.closeConn()
}

func (s *Stream) fail(err error) (Frame, error) {
	s.finish(err)
	s.logger.Debug("chat exchange failed", "error", err, "notifications", s.notifications)
	return Frame{}, err
}

func (s *Stream) finish(err error) {
	s.done = true
	s.err = err
	s.stop()
	s.closeConn()
}

func (s *Stream) closeConn() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
