// ABOUTME: Admin CLI for Cheshire Cat instances built on the client SDK
// ABOUTME: Logs in, chats with agents, uploads documents and inspects users, settings and plugins

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"

	cheshire "github.com/2389/cheshire-client"
	"github.com/2389/cheshire-client/internal/config"
	"github.com/2389/cheshire-client/internal/logging"
	"github.com/2389/cheshire-client/transport"
)

const banner = `
      _               _     _                     _           _
  ___| |__   ___  ___| |__ (_)_ __ ___       __ _| |_ __ ___ (_)_ __
 / __| '_ \ / _ \/ __| '_ \| | '__/ _ \___ / _' | | '_ ' _ \| | '_ \
| (__| | | |  __/\__ \ | | | | | |  __/___| (_| | | | | | | | | | | |
 \___|_| |_|\___||___/_| |_|_|_|  \___|    \__,_|_|_| |_| |_|_|_| |_|
`

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	client *cheshire.Client
	id     transport.Identity
}

func main() {
	args, configPath := extractFlag(os.Args[1:], "--config")
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cmd := args[0]
	args = args[1:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(configPath)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "login":
		err = a.cmdLogin(ctx, args)
	case "chat":
		err = a.cmdChat(ctx, args)
	case "users":
		err = a.cmdUsers(ctx)
	case "settings":
		err = a.cmdSettings(ctx, args)
	case "plugins":
		err = a.cmdPlugins(ctx, args)
	case "collections":
		err = a.cmdCollections(ctx)
	case "upload":
		err = a.cmdUpload(ctx, args)
	case "mimetypes":
		err = a.cmdMimeTypes(ctx)
	case "agents":
		err = a.cmdAgents(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: cheshire-admin [--config <path>] <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login [user] [password]      Obtain a session token and save it")
	fmt.Println("  chat <agent-id> [msg]        Chat with an agent (REPL if no message)")
	fmt.Println("       --ws                    Use the websocket channel and show notifications")
	fmt.Println("       --html                  Print answers rendered as HTML")
	fmt.Println("       --user <user-id>        Act as this user")
	fmt.Println("  users                        List users")
	fmt.Println("  settings [search]            List agent settings")
	fmt.Println("  plugins [query]              List installed and registry plugins")
	fmt.Println("  plugins toggle <id>          Activate or deactivate a plugin")
	fmt.Println("  collections                  List memory collections")
	fmt.Println("  upload <file>...             Ingest files into the agent's memory")
	fmt.Println("  mimetypes                    List file types accepted by upload")
	fmt.Println("  agents                       List agents (system scope)")
	fmt.Println()
	yellow.Println("Configuration:")
	fmt.Println("  --config <path>              YAML or TOML config file")
	fmt.Println("  CHESHIRE_CONFIG              Config file path when --config is absent")
	fmt.Println("  $XDG_CONFIG_HOME/cheshire/config.yaml   Default config file")
	fmt.Println()
	yellow.Println("Environment overrides:")
	fmt.Println("  CHESHIRE_HOST, CHESHIRE_PORT, CHESHIRE_SECURE")
	fmt.Println("  CHESHIRE_API_KEY, CHESHIRE_TOKEN")
	fmt.Println("  CHESHIRE_AGENT_ID, CHESHIRE_USER_ID, CHESHIRE_LOG_LEVEL")
	fmt.Println()
	yellow.Println("Examples:")
	fmt.Println("  export CHESHIRE_API_KEY=\"meow\"")
	fmt.Println("  cheshire-admin login admin admin")
	fmt.Println("  cheshire-admin chat agent \"What do you remember about me?\"")
	fmt.Println("  cheshire-admin --config cat.toml upload notes.md report.pdf")
	fmt.Println()
}

func newApp(configPath string) (*app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// A token saved by login is used unless the configuration names one.
	// An expired token would shadow the API key, so it is skipped.
	if cfg.Auth.Token == "" {
		if tok := readSavedToken(); tok != "" {
			if transport.TokenExpired(tok, time.Now()) {
				color.New(color.Faint).Fprintln(os.Stderr, "Saved token expired, run 'cheshire-admin login' to refresh it")
			} else {
				cfg.Auth.Token = tok
			}
		}
	}

	logger := logging.New(cfg.Logging, os.Stderr)
	client, err := cheshire.NewClient(cfg.ClientOptions(logger))
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return &app{cfg: cfg, client: client, id: cfg.DefaultIdentity()}, nil
}

// loadConfig reads the config file named by flag, CHESHIRE_CONFIG or the XDG
// default. A missing default file falls back to environment-only config.
func loadConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("CHESHIRE_CONFIG"); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return config.FromEnv()
		}
		path = filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.FromEnv()
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configDir returns $XDG_CONFIG_HOME/cheshire or ~/.config/cheshire.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cheshire"), nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// readSavedToken returns the token written by login, or "".
func readSavedToken() string {
	path, err := tokenPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveToken(token string) (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing token: %w", err)
	}
	return path, nil
}

// extractFlag removes "name value" or "name=value" from args and returns the
// remaining args and the value.
func extractFlag(args []string, name string) ([]string, string) {
	rest := make([]string, 0, len(args))
	value := ""
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == name && i+1 < len(args):
			value = args[i+1]
			i++
		case strings.HasPrefix(args[i], name+"="):
			value = strings.TrimPrefix(args[i], name+"=")
		default:
			rest = append(rest, args[i])
		}
	}
	return rest, value
}

// extractBool removes name from args and reports whether it was present.
func extractBool(args []string, name string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	found := false
	for _, a := range args {
		if a == name {
			found = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, found
}

// truncate shortens s to at most maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string([]rune(s)[:max(maxLen, 0)])
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
