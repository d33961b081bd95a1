package optional

// Viewer defines the read-only view of an Optional.
type Viewer[T any] interface {
	// HasValue returns true if a value is held
	HasValue() bool
	// IsEmpty returns true if no value is held
	IsEmpty() bool
	// Unwrap returns the slot content without an occupancy check
	Unwrap() T
	// Get returns the slot content and whether a value is present
	Get() (T, bool)
}
