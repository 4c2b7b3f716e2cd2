package backend

import (
	"fmt"
)

// Service names used in errors, logs and metric labels.
const (
	ApplicationServiceName = "application"
	CatalogServiceName     = "catalog"
	ReviewServiceName      = "review"
)

// TransportError reports a backend call that could not produce a usable
// answer: a connection failure, a timeout, a non-success status or an
// undecodable body.
type TransportError struct {
	Service    string // Service is the backend that was called.
	Path       string // Path is the request path.
	StatusCode int    // StatusCode is zero when no response was received.
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s service %s: status %d: %v", e.Service, e.Path, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s service %s: %v", e.Service, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
