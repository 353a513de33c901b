/*
errors.go - Centralized error types for the agreement service

PURPOSE:
  All sentinel errors in one place. The presentation engine itself never
  fails (it degrades to empty tables), so everything here belongs to the
  surrounding layers: the backend client, the cache store, and the HTTP
  handlers that map these onto status codes.

USAGE:
  if errors.Is(err, agreement.ErrOfferNotFound) {
      writeError(w, http.StatusNotFound, ...)
  }

SEE ALSO:
  - client/client.go: Produces these from backend responses
  - api/handlers.go: Maps them onto HTTP responses
*/
package agreement

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrOfferNotFound is returned when the backend has no agreement
	// with the requested id.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrNotAuthorised is returned when the caller's auth token does not
	// grant access to the agreement.
	ErrNotAuthorised = errors.New("account not authorised to view or accept this offer agreement")

	// ErrUnknownStatus is returned when an agreement carries a status
	// outside the offered/accepted/withdrawn machine.
	ErrUnknownStatus = errors.New("agreement is in an unknown state")

	// ErrUnknownAction is returned for an unrecognised POST action.
	ErrUnknownAction = errors.New("unrecognised action in POST payload")

	// ErrTermsNotConfirmed is returned when accept-offer is submitted
	// without the terms checkbox confirmed.
	ErrTermsNotConfirmed = errors.New("please agree with the terms and conditions")

	// ErrAgreementNotCached is returned when an agreement is missing
	// from the local cache and no backend is configured.
	ErrAgreementNotCached = errors.New("agreement not cached")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// BackendError carries a non-2xx backend response that is not one of
// the mapped sentinel cases.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unable to load agreement: backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("unable to load agreement: %s", e.Message)
}

// IsClientError reports whether the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownStatus) ||
		errors.Is(err, ErrUnknownAction) ||
		errors.Is(err, ErrTermsNotConfirmed)
}

// IsNotFound reports whether the error indicates a missing agreement.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOfferNotFound) || errors.Is(err, ErrAgreementNotCached)
}
