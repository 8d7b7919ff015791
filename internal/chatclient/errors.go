package chatclient

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is reported when the trimmed input is empty. It never reaches
// the network and is not a RequestFailure.
var ErrEmptyInput = errors.New("empty input")

// ErrAborted marks a send that left the Sending state without a result
var ErrAborted = errors.New("request aborted")

// FailureKind tells apart the ways a chat round trip can fail
type FailureKind int

const (
	// FailureTransport covers connection errors, timeouts and cancellation
	FailureTransport FailureKind = iota
	// FailureStatus is any non-2xx HTTP status
	FailureStatus
	// FailureDecode is a success status with a body that is not a chat response
	FailureDecode
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// RequestFailure is the single error category for a chat round trip. All
// kinds are handled the same way by the UI.
type RequestFailure struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (f *RequestFailure) Error() string {
	switch {
	case f.Kind == FailureStatus:
		return fmt.Sprintf("HTTP error! status: %d", f.StatusCode)
	case f.Err != nil:
		return f.Err.Error()
	default:
		return f.Kind.String() + " failure"
	}
}

func (f *RequestFailure) Unwrap() error {
	return f.Err
}

// AsFailure folds any error into a RequestFailure so callers only ever see
// the one category.
func AsFailure(err error) *RequestFailure {
	var failure *RequestFailure
	if errors.As(err, &failure) {
		return failure
	}
	return &RequestFailure{Kind: FailureTransport, Err: err}
}
