// Package config handles configuration loading for Cheshire Cat clients.
//
// # Overview
//
// Configuration is loaded from YAML or TOML files with environment variable
// expansion, then overridden by CHESHIRE_* variables and validated.
//
// # Configuration File
//
// The command line client looks in order at:
//
//  1. The --config flag
//  2. Path from the CHESHIRE_CONFIG environment variable
//  3. $XDG_CONFIG_HOME/cheshire/config.yaml (or ~/.config/cheshire/config.yaml)
//
// Files ending in .toml are parsed as TOML; anything else is YAML.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  api_key: "${CAT_API_KEY}"
//
// Syntax: ${VAR_NAME}
//
// # Overrides
//
// After the file is parsed these variables replace the matching fields:
//
//	CHESHIRE_HOST, CHESHIRE_PORT, CHESHIRE_SECURE,
//	CHESHIRE_API_KEY, CHESHIRE_TOKEN,
//	CHESHIRE_AGENT_ID, CHESHIRE_USER_ID, CHESHIRE_LOG_LEVEL
//
// # Configuration Sections
//
//	server:
//	  host: "localhost"
//	  port: 1865
//	  secure: false        # https/wss when true
//
//	auth:
//	  api_key: "${CAT_API_KEY}"
//	  username: "admin"    # used by the login command
//	  password: "${CAT_PASSWORD}"
//
//	identity:
//	  agent_id: "agent"
//	  user_id: "user"
//
//	timeouts:
//	  http: "30s"          # whole HTTP call
//	  handshake: "10s"     # websocket opening handshake only
//
//	logging:
//	  level: "info"        # debug, info, warn, error
//	  format: "text"       # text, json
//
// # Validation
//
// Load validates that a host is set, the port is in range, username and
// password come as a pair and the logging options are known. A missing API key
// or token is not a configuration error; the client reports it on first use.
package config
