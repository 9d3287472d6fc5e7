package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns the zero value for nil pointers
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
