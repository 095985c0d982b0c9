package stdx

// Must0 panics if err is not nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, or panics if err is not nil. It is meant for setup code where an error
// means the program cannot start.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
