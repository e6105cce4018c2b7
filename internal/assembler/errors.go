package assembler

import "errors"

var (
	// ErrInvalidInstanceIndex is returned when an instance index has no
	// corresponding entry in the context's instance list. The index is
	// never clamped; the call aborts.
	ErrInvalidInstanceIndex = errors.New("instance index out of range")

	// ErrMissingOptionalAccount is returned when a discount account is
	// supplied with a zero owner or address. A half-specified pair would
	// produce a list the engine misreads, so the call aborts instead.
	ErrMissingOptionalAccount = errors.New("incomplete discount account pair")
)
