// ABOUTME: Interactive and one-shot chat with an agent
// ABOUTME: Answers print as text or goldmark-rendered HTML; websocket mode streams notifications

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/yuin/goldmark"

	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// chatSession holds the options of one chat command.
type chatSession struct {
	app    *app
	id     transport.Identity
	chatID string
	ws     bool
	html   bool
	out    io.Writer
}

func (a *app) cmdChat(ctx context.Context, args []string) error {
	args, useWS := extractBool(args, "--ws")
	args, html := extractBool(args, "--html")
	args, userID := extractFlag(args, "--user")
	if len(args) < 1 {
		return fmt.Errorf("usage: chat <agent-id> [message] [--ws] [--html] [--user <user-id>]")
	}

	id := a.id
	id.AgentID = args[0]
	if userID != "" {
		id.UserID = userID
	}

	s := &chatSession{
		app:    a,
		id:     id,
		chatID: uuid.NewString(),
		ws:     useWS,
		html:   html,
		out:    os.Stdout,
	}

	if len(args) > 1 {
		return s.ask(ctx, strings.Join(args[1:], " "))
	}
	return s.repl(ctx, os.Stdin)
}

// repl reads one message per line until EOF, "/quit" or cancellation.
func (s *chatSession) repl(ctx context.Context, in io.Reader) error {
	cyan := color.New(color.FgCyan)
	dim := color.New(color.Faint)

	cyan.Fprintf(s.out, "Chatting with %s", s.id.Agent())
	dim.Fprintf(s.out, " (chat %s, /quit to exit)\n", s.chatID)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return nil
		}
		if err := s.ask(ctx, line); err != nil {
			if ctx.Err() != nil {
				return err
			}
			color.New(color.FgRed).Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// ask sends one message and prints the answer.
func (s *chatSession) ask(ctx context.Context, text string) error {
	msg := models.Message{
		MessageBase:      models.MessageBase{Text: text},
		AdditionalFields: map[string]any{"chat_id": s.chatID},
	}

	var (
		answer *models.MessageOutput
		err    error
	)
	if s.ws {
		answer, err = s.app.client.Message.SendWebSocket(ctx, msg, s.id, s.notify)
	} else {
		answer, err = s.app.client.Message.SendHTTP(ctx, msg, s.id)
	}
	if err != nil {
		return err
	}
	return s.print(answer)
}

// notify prints a non-terminal frame dimmed. Token frames stream their
// content inline; anything else shows its type.
func (s *chatSession) notify(raw string) error {
	dim := color.New(color.Faint)
	frame := gjson.Parse(raw)
	switch kind := frame.Get("type").String(); kind {
	case "chat_token":
		dim.Fprint(s.out, frame.Get("content").String())
	case "":
		dim.Fprintf(s.out, "[%s]\n", truncate(raw, 80))
	default:
		content := frame.Get("content").String()
		dim.Fprintf(s.out, "[%s] %s\n", kind, truncate(content, 80))
	}
	return nil
}

func (s *chatSession) print(answer *models.MessageOutput) error {
	if answer.Error {
		color.New(color.FgRed).Fprintf(s.out, "%s\n", answer.Content())
		return nil
	}

	text := answer.Content()
	if s.html {
		rendered, err := renderHTML(text)
		if err != nil {
			return err
		}
		text = rendered
	}

	green := color.New(color.FgGreen)
	green.Fprint(s.out, "< ")
	fmt.Fprintln(s.out, strings.TrimRight(text, "\n"))
	return nil
}

// renderHTML converts a markdown answer to HTML.
func renderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering answer: %w", err)
	}
	return buf.String(), nil
}
