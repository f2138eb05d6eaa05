package clique

import "errors"

// Sentinel errors returned by the search engines in this package.
var (
	// ErrNonPositiveK is returned when fewer than one part is supplied.
	ErrNonPositiveK = errors.New("clique: k must be at least 1")

	// ErrEmptyPart is returned when a part contains no vertices.
	ErrEmptyPart = errors.New("clique: parts may not be empty")

	// ErrAlreadyInitialized is returned by Init when called on an engine
	// that has already completed initialization.
	ErrAlreadyInitialized = errors.New("clique: engine already initialized")

	// ErrNotInitialized is returned by Next when called before Init (or the
	// one-shot constructor) has succeeded.
	ErrNotInitialized = errors.New("clique: engine not initialized")

	// ErrNotKPartite is returned when a vertex has an adjacency count other
	// than 1 within its own part, meaning the input violates the k-partite
	// assumption (a vertex is always adjacent to itself by convention, and
	// to nothing else in its own part).
	ErrNotKPartite = errors.New("clique: graph is not k-partite")

	// ErrCancelled is returned when the ambient interrupt flag or the
	// caller-supplied context was observed at a checkpoint.
	ErrCancelled = errors.New("clique: search was cancelled")
)
