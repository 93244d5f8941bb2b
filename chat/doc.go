// Package chat runs a single message exchange with an agent over a websocket.
//
// An exchange sends one JSON message and then reads frames until the agent's
// answer arrives. Frames before the answer are notifications (tokens, tool
// progress, status lines) and are handed to the caller in arrival order. The
// answer is the first frame containing the literal `"type":"chat"`; it ends
// the exchange and the connection is closed.
//
// Each exchange uses its own connection, which is closed exactly once however
// the exchange ends: answer, empty frame, read failure, callback error,
// cancellation or an explicit Close.
//
// Reads have no deadline. Cancel the context to abandon a slow agent.
package chat
