// Package apierror defines the errors returned by every layer of the client.
//
// Nothing in the client recovers from a failure locally. Callers match on the
// values here:
//
//	var remote *apierror.RemoteError
//	if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
//	    // ...
//	}
//
//	if errors.Is(err, apierror.ErrMissingCredentials) {
//	    // call SetToken or configure an API key first
//	}
package apierror
