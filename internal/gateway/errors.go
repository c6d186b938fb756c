package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-annual-review/internal/domain"
)

// non200Prefix is how the GraphQL client reports a non-200 HTTP response.
const non200Prefix = "non-200 OK status code: "

// classifyRESTError wraps a go-github error with its domain error kind.
func classifyRESTError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrTransport, err)
}

// classifyGraphQLError wraps a githubv4 error with its domain error kind.
// The client does not export its error types, so HTTP failures are told
// apart from query errors by their message.
func classifyGraphQLError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, non200Prefix+"401"):
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	case strings.HasPrefix(msg, non200Prefix):
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	case isNetworkError(err):
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrGraphQuery, err)
	}
}

func isNetworkError(err error) bool {
	var urlErr interface{ Timeout() bool }
	return errors.As(err, &urlErr)
}
