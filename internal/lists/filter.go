// Generic helpers on slices.
package lists

// Filter returns items of s for which fn is true, in order.
func Filter[T any](s []T, fn func(T) bool) (out []T) {
	for _, i := range s {
		if fn(i) {
			out = append(out, i)
		}
	}
	return
}
