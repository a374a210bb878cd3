package catalog

import (
	"math"
	"strconv"
)

// Maybe carries either a value of type T or nothing. The zero value is the
// absent case, so absence can never alias a legitimate value the way a
// sentinel would. "Not found" conditions are returned as Maybe values, not
// errors.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, ok: true}
}

// None returns the absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether one is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// IsNothing reports whether the Maybe is absent.
func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// OrElse returns the value when present, otherwise fallback.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// ParseFloat parses user input as a float. The empty string and anything
// that is not a finite number come back absent.
func ParseFloat(s string) Maybe[float64] {
	if s == "" {
		return None[float64]()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return None[float64]()
	}
	return Just(f)
}
