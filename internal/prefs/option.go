package prefs

// Option distinguishes "explicitly set" from "absent" so a profile can
// override a preference with zero or an empty list and still be honored.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps an explicit value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it was explicitly set.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsSet reports whether the option carries an explicit value.
func (o Option[T]) IsSet() bool {
	return o.present
}

// Or returns the value when set, otherwise the fallback.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
