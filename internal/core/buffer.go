package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// The contents of a reused slice are left as they were.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}
