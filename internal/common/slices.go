package common

// IsSingle reports whether the slice holds exactly one element. Field-role
// selection treats a single candidate as the resolved one.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple reports whether the slice holds more than one element, the
// ambiguous case for single-valued roles.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element and true, or the zero value and false when
// the slice is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
