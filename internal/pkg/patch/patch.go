// Package patch applies optional PATCH fields onto current values.
package patch

// Coalesce yields *ptr when the field was sent and fallback otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Map is Coalesce with a normalization step for sent values.
func Map[T, U any](ptr *T, fallback U, fn func(T) U) U {
	if ptr != nil {
		return fn(*ptr)
	}
	return fallback
}
