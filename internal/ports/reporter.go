package ports

// Reporter receives the status lines of a run
type Reporter interface {
	// OK reports a completed step
	OK(format string, args ...any)
	// New reports that the output changed
	New(format string, args ...any)
	// Err reports a failure
	Err(format string, args ...any)
}
