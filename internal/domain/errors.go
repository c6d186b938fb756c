package domain

import "errors"

// Error kinds returned by the gateway. Callers match them with errors.Is.
var (
	// ErrAuthentication means the credential is missing, invalid or expired.
	ErrAuthentication = errors.New("authentication failed")
	// ErrTransport means the API answered with a non-success response or could not be reached.
	ErrTransport = errors.New("transport error")
	// ErrGraphQuery means a well-formed GraphQL response carried query errors.
	ErrGraphQuery = errors.New("graphql query error")
	// ErrDataShape means a response lacked a field that has no sane default.
	ErrDataShape = errors.New("unexpected data shape")
)
