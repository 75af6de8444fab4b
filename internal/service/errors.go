package service

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/fantasy"
)

const (
	KindValidation     = "ValidationError"
	KindPlayerNotFound = "PlayerNotFound"
	KindHTTP           = "HTTPError"
	KindConnection     = "ConnectionError"
	KindTeamNotFound   = "TeamNotFound"
	KindDecode         = "DecodeError"
	KindRuntime        = "RuntimeError"
)

// ValidationError rejects a transaction before anything is written.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PlayerNotFoundError reports a lookup miss, with suggestions when a name
// search produced any.
type PlayerNotFoundError struct {
	Message     string
	Suggestions []string
}

func (e *PlayerNotFoundError) Error() string {
	return e.Message
}

// OperationError prefixes a failure with the operation that raised it.
type OperationError struct {
	Prefix string
	Err    error
}

func (e *OperationError) Error() string {
	return e.Prefix + detail(e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// detail prefers the platform's own messages over the wrapped error text.
func detail(err error) string {
	var httpErr *espn.HTTPError
	if errors.As(err, &httpErr) {
		if msgs := httpErr.Messages(); len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return err.Error()
}

// Kind names the error category reported to callers.
func Kind(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *PlayerNotFoundError
		httpErr       *espn.HTTPError
		decodeErr     *espn.DecodeError
		urlErr        *url.Error
		netErr        net.Error
	)

	switch {
	case errors.As(err, &validationErr), errors.Is(err, fantasy.ErrUnknownPosition):
		return KindValidation
	case errors.As(err, &notFoundErr), errors.Is(err, fantasy.ErrPlayerNotFound):
		return KindPlayerNotFound
	case errors.Is(err, fantasy.ErrTeamNotFound):
		return KindTeamNotFound
	case errors.As(err, &httpErr):
		return KindHTTP
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &urlErr), errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindConnection
	default:
		return KindRuntime
	}
}

// readFailure keeps the message of a recognised error and prefixes
// anything unexpected.
func readFailure(prefix string, err error) error {
	if Kind(err) == KindRuntime {
		return &OperationError{Prefix: prefix, Err: err}
	}
	return err
}

func writeFailure(prefix string, err error) error {
	return &OperationError{Prefix: prefix, Err: err}
}
