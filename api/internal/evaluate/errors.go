package evaluate

import "errors"

// ErrorKind classifies evaluation failures for transport mapping.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota + 1
	KindUnreachableURL
	KindUpstreamUnavailable
	KindMalformedResponse
	KindScoreOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnreachableURL:
		return "unreachable_url"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindMalformedResponse:
		return "malformed_response"
	case KindScoreOutOfRange:
		return "score_out_of_range"
	default:
		return "unknown"
	}
}

// Error carries a caller-safe Detail and an internal cause. The cause is for
// logs only; handlers must never echo it to the client.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Detail + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf returns the ErrorKind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
