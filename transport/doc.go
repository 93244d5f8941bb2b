// Package transport owns the credentials used to reach a Cheshire Cat
// instance and produces authenticated connections from them.
//
// # Credentials
//
// A Transport is built once with a host, optional port, optional API key and
// a flag choosing http/ws or https/wss. A session token obtained by logging in
// is recorded with SetToken and takes priority over the API key from then on.
// Asking for a connection with neither set fails with
// apierror.ErrMissingCredentials before any network I/O.
//
// # Identity
//
// The agent and user a call targets are carried in an Identity value passed to
// every call. The Transport keeps no identity state, so one Transport can be
// shared by goroutines acting for different agents and users.
//
// # HTTP
//
// Connection returns an *http.Client whose round tripper adds
//
//	Authorization: Bearer <token-or-apikey>
//	agent_id: <agent id, default "agent">
//	user_id: <user id>          (only when set)
//
// to every request.
//
// # WebSocket
//
// DialWebSocket connects to
//
//	ws[s]://host[:port]/ws[/<agent_id>]?token=...|apikey=...[&user_id=...]
//
// with gorilla/websocket. Only the handshake has a timeout.
package transport
