package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// Reversed returns a new slice holding the elements of s in reverse order.
// The input is left untouched.
func Reversed[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
