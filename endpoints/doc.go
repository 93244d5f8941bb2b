// Package endpoints groups the Cheshire Cat REST resources into typed calls.
//
// Each group is a thin layer over the marshaller: it picks the verb, path,
// body and response type, and passes the caller's Identity through unchanged.
// Calls scoped to an agent use the default agent when Identity.AgentID is
// empty; system-wide calls in Admins always target the "system" agent.
package endpoints
