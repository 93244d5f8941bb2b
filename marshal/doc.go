// Package marshal turns typed requests into authenticated HTTP calls and
// decodes the replies into typed results.
//
// A Marshaller issues one HTTP request per call through a connection obtained
// from the transport for the call's Identity. Bodies are JSON or multipart;
// multipart files are opened before any connection is requested, so a missing
// file fails locally and nothing is sent.
//
// Replies with a status outside 2xx become *apierror.RemoteError with the body
// untouched. Successful replies are decoded with Decode, which ignores unknown
// fields and enforces the required fields of types implementing models.Schema.
//
// The generic helpers Get, PostJSON, PostMultipart, Put and Delete cover the
// common shapes; GetRaw returns the decoded JSON without a target type.
package marshal
