package infra

import (
	"errors"
	"log/slog"
	"strconv"

	"electro-checkout/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	slogger.Debug("Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Catalog store error kinds
const (
	KindNotFound RepositoryErrorKind = "NOT_FOUND"
)

type ProviderErrorKind string

// ProviderError describes a failed call to the payment provider.
// StatusCode and Body are set only for UPSTREAM_STATUS and MALFORMED_RESPONSE.
type ProviderError struct {
	Kind       ProviderErrorKind
	Op         string
	StatusCode int
	Body       string
	err        error
}

func (e *ProviderError) Error() string {
	msg := string(e.Kind) + ": " + e.Op
	if e.StatusCode != 0 {
		msg += ": status " + strconv.Itoa(e.StatusCode)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.err
}

func NewProviderError(kind ProviderErrorKind, op string, statusCode int, body string, err error) *ProviderError {
	return &ProviderError{Kind: kind, Op: op, StatusCode: statusCode, Body: body, err: err}
}

func AsProviderError(err error) (*ProviderError, bool) {
	var e *ProviderError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsProviderKind(err error, kind ProviderErrorKind) bool {
	e, ok := AsProviderError(err)
	return ok && e.Kind == kind
}

// Payment provider error kinds
const (
	KindTransport         ProviderErrorKind = "TRANSPORT"
	KindUpstreamStatus    ProviderErrorKind = "UPSTREAM_STATUS"
	KindMalformedResponse ProviderErrorKind = "MALFORMED_RESPONSE"
)
