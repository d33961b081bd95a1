package optional

// Equal reports whether a and b are both empty, or both hold values
// that compare equal.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.hasValue != b.hasValue {
		return false
	}
	if !a.hasValue {
		return true
	}
	return a.value == b.value
}

// EqualValue reports whether o holds a value equal to v. An empty
// Optional never equals a bare value.
func EqualValue[T comparable](o Optional[T], v T) bool {
	return o.hasValue && o.value == v
}

// EqualFunc is Equal for types without ==; held values are compared
// with eq.
func EqualFunc[T any](a, b Optional[T], eq func(a, b T) bool) bool {
	if a.hasValue != b.hasValue {
		return false
	}
	if !a.hasValue {
		return true
	}
	return eq(a.value, b.value)
}
