package tagged

import "errors"

var (
	// ErrMalformedCid is returned when a content-id's digest is too short.
	ErrMalformedCid = errors.New("tagged: malformed content id")
	// ErrUnknownKind is returned when the kind tag does not match any of the
	// eight recognized node shapes.
	ErrUnknownKind = errors.New("tagged: unknown node kind")
	// ErrWrongKind is returned when a kind-specific decoder is invoked
	// against a node tagged with a different kind.
	ErrWrongKind = errors.New("tagged: wrong kind for decoder")
	// ErrContinuationUnsupported is returned when a DataFrame carries a
	// non-nil Next link; chained data frames are out of scope.
	ErrContinuationUnsupported = errors.New("tagged: data-frame continuation not supported")
	// ErrIndefiniteArray is returned when an array header describes an
	// indefinite-length array where this format requires a definite one.
	ErrIndefiniteArray = errors.New("tagged: indefinite-length array not supported")
)
