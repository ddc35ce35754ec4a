package patch

// FirstNonZero returns the first value that is not the zero value of T, or the zero value if all are.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
