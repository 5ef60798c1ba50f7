package apperr

import "errors"

// Failure taxonomy for the storefront. Every error shown to the user is
// classified as one of these at the page-controller boundary.
var (
	// ErrAuthRequired means the session is missing or invalid and the user
	// must (re-)authenticate.
	ErrAuthRequired = errors.New("authentication required")

	// ErrValidation covers client-side form checks that never reach the
	// network.
	ErrValidation = errors.New("validation")

	// ErrRemoteRejected is a non-2xx response from the API.
	ErrRemoteRejected = errors.New("rejected by server")

	// ErrRestriction means the buyer-eligibility check failed for at least
	// one product.
	ErrRestriction = errors.New("account type restriction")

	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is a transport-level failure. The operation did not
	// reach the server and may be retried.
	ErrUnavailable = errors.New("service unavailable")
)

// Retryable reports whether the caller may usefully retry the operation.
func Retryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
