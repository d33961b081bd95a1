package optional

// BadAccessError reports checked access to an empty Optional. It is
// raised as a panic value by Value and carries a descriptive message.
type BadAccessError struct {
	msg string
}

func (e *BadAccessError) Error() string {
	return e.msg
}

// Optional holds either a single value of type T or nothing. The value
// lives inline in the struct; no heap allocation happens beyond what T
// itself does. The zero value is an empty Optional.
//
// Invariant: the slot holds a meaningful value iff hasValue is true.
// When false, the slot is kept at T's zero value.
type Optional[T any] struct {
	value    T
	hasValue bool
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{
		value:    v,
		hasValue: true,
	}
}

// Make returns an Optional whose held value is produced directly into
// the slot by build, without an intermediate Optional.
func Make[T any](build func() T) Optional[T] {
	return Optional[T]{
		value:    build(),
		hasValue: true,
	}
}

// FromPtr returns an empty Optional when p is nil, otherwise an
// Optional holding *p.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// HasValue returns true if a value is held.
func (o Optional[T]) HasValue() bool {
	return o.hasValue
}

// IsEmpty returns true if no value is held.
func (o Optional[T]) IsEmpty() bool {
	return !o.hasValue
}

// Unwrap returns the slot content without an occupancy check. On an
// empty Optional it returns the zero value of T; checking HasValue
// first is the caller's responsibility.
func (o Optional[T]) Unwrap() T {
	return o.value
}

// Ptr returns a pointer to the slot, with no occupancy check.
// Mutations through it are visible in the container.
func (o *Optional[T]) Ptr() *T {
	return &o.value
}

// Value returns the held value. It panics with *BadAccessError when
// the Optional is empty.
func (o Optional[T]) Value() T {
	if !o.hasValue {
		panic(&BadAccessError{msg: "call value on empty object"})
	}
	return o.value
}

// Get returns the slot content and whether a value is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// ValueOr returns the held value if present, otherwise def.
func (o Optional[T]) ValueOr(def T) T {
	if o.hasValue {
		return o.value
	}
	return def
}

// Set assigns v into the slot, replacing any held value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.hasValue = true
}

// Emplace replaces the held value, if any, with one built directly in
// the slot by build. The old value is released before build runs; the
// Optional is occupied afterwards. If build panics, the Optional is
// left empty.
func (o *Optional[T]) Emplace(build func() T) {
	if o.hasValue {
		o.Reset()
	}
	o.value = build()
	o.hasValue = true
}

// Reset empties the Optional, zeroing the slot so references held by
// the old value are released. Resetting an empty Optional is a no-op.
func (o *Optional[T]) Reset() {
	var zero T
	o.value = zero
	o.hasValue = false
}

// Swap exchanges contents and occupancy with other. All four occupancy
// combinations reduce to one struct exchange; a drained side ends up
// empty with a zeroed slot.
func (o *Optional[T]) Swap(other *Optional[T]) {
	*o, *other = *other, *o
}
