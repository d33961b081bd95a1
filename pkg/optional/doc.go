// Package optional provides Optional[T], a value-semantic container
// holding either one value of type T inline or nothing.
//
// It parallels the usual pointer-as-maybe pattern but keeps the value
// in the container itself and tracks occupancy with a flag:
// - Some/None/Make/FromPtr: create an Optional
// - HasValue/IsEmpty/Get: query occupancy
// - Unwrap/Ptr: unchecked access, Value: checked access (panics with
//   *BadAccessError on an empty container), ValueOr: default substitution
// - Set/Emplace/Reset/Swap: mutate in place
// - Equal/EqualValue/EqualFunc: compare containers and bare values
//
// The zero value of Optional[T] is empty and ready to use. An empty
// Optional keeps its slot at T's zero value, so Optional[T] is itself
// comparable whenever T is.
package optional
