package cart

// Kind classifies the outcome of a cart operation.
type Kind int

const (
	KindOK Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindInternal
)

// String returns the outcome label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Result is the outcome of a service call: either Ok with data, or Failed
// with a kind. Both carry a message meant for the end user.
type Result[T any] struct {
	Data    T
	Message string
	Kind    Kind
}

// Ok builds a successful result.
func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Data: data, Message: message, Kind: KindOK}
}

// Failed builds a failed result.
func Failed[T any](kind Kind, message string) Result[T] {
	return Result[T]{Message: message, Kind: kind}
}

// IsOK reports whether the operation succeeded.
func (r Result[T]) IsOK() bool {
	return r.Kind == KindOK
}

// Retryable reports whether repeating the call may succeed.
// Only storage failures are retryable.
func (r Result[T]) Retryable() bool {
	return r.Kind == KindInternal
}
