package decor

// Opt is a style field that is either unset or holds a value.
// The zero value is unset.
type Opt[T any] struct {
	val T
	ok  bool
}

// Set returns an Opt holding v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

// Get returns the held value and whether one is set.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// Or returns the held value, or def when unset.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// IsSet reports whether a value is held.
func (o Opt[T]) IsSet() bool {
	return o.ok
}
