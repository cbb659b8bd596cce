package chunk

import "errors"

var (
	// ErrInvalidSize is returned when a chunk size smaller than 1 is requested.
	ErrInvalidSize = errors.New("chunk size must be at least 1")
	// ErrNilSource is returned when a List is constructed without a sequence or cursor.
	ErrNilSource = errors.New("source must not be nil")
	// ErrNoMoreChunks is returned by Next on the last node of a chain.
	// Callers are expected to check HasMore first.
	ErrNoMoreChunks = errors.New("no more chunks")
	// ErrAdvanced is returned by Next when the node already handed the cursor to a successor.
	ErrAdvanced = errors.New("chunk already advanced")
	// ErrClosed is returned by Next after the chain was closed.
	ErrClosed = errors.New("chunk list closed")
)
