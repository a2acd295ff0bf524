package projectsapi

import "errors"

// ErrFetchFailed is returned for every listing failure: transport errors,
// timeouts, non-2xx responses and malformed bodies alike.
var ErrFetchFailed = errors.New("fetch projects failed")
