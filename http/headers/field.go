package headers

// Field is a single typed header slot. It starts unset and is set whenever
// a header line classified into it arrives; a repeated header silently
// overwrites the previous value (last write wins).
type Field[T any] struct {
	value T
	set   bool
}

// Set stores the value, replacing whatever was there before.
func (f *Field[T]) Set(value T) {
	f.value = value
	f.set = true
}

// Get returns the stored value and whether the slot was ever set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Or returns either the stored value or the fallback if the slot is unset.
func (f Field[T]) Or(fallback T) T {
	if !f.set {
		return fallback
	}

	return f.value
}

// IsSet reports whether the slot was ever set.
func (f Field[T]) IsSet() bool {
	return f.set
}
