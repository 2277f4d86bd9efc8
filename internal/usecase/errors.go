package usecase

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrAuthRequired = crerr.New("authentication required")
	ErrNotFound     = crerr.New("resource not found")
	ErrUpstream     = crerr.New("upstream request failed")
	ErrIntegrity    = crerr.New("upstream data integrity violation")
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindAuthRequired
	KindNotFound
	KindUpstream
	KindIntegrity
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindAuthRequired:
		return "auth_required"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	case KindIntegrity:
		return "integrity"
	default:
		return "internal"
	}
}

// KindOf resolves the most specific kind carried by err.
// A not-found mark wins over the upstream failure it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case crerr.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case crerr.Is(err, ErrAuthRequired):
		return KindAuthRequired
	case crerr.Is(err, ErrNotFound):
		return KindNotFound
	case crerr.Is(err, ErrIntegrity):
		return KindIntegrity
	case crerr.Is(err, ErrUpstream):
		return KindUpstream
	default:
		return KindInternal
	}
}

// UpstreamError reports a failed call to one of the FPL hosts.
// StatusCode is zero when no response was received.
type UpstreamError struct {
	Call       string
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Err != nil:
		return fmt.Sprintf("fetch %s: status=%d: %v", e.Call, e.StatusCode, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("fetch %s: status=%d", e.Call, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.Call, e.Err)
	default:
		return fmt.Sprintf("fetch %s failed", e.Call)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// UpstreamStatus returns the HTTP status of the first upstream error in the chain.
func UpstreamStatus(err error) (int, bool) {
	var upstreamErr *UpstreamError
	if !crerr.As(err, &upstreamErr) || upstreamErr.StatusCode == 0 {
		return 0, false
	}
	return upstreamErr.StatusCode, true
}

// IsUpstreamNotFound reports whether an upstream host answered 404.
func IsUpstreamNotFound(err error) bool {
	status, ok := UpstreamStatus(err)
	return ok && status == 404
}
