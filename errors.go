package sight

// PresentError is returned by [Canvas.Present] and
// [Canvas.ForcePresent] when the underlying surface flush fails. The
// canvas remains dirty, so presentation may be retried.
type PresentError struct {
	Err error
}

func (e *PresentError) Error() string {
	return "sight: surface flush failed: " + e.Err.Error()
}

func (e *PresentError) Unwrap() error { return e.Err }
