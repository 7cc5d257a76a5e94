package cli

// backendError hides the transport detail behind the one message users act
// on. The cause stays reachable through Unwrap for logs and tests.
type backendError struct {
	err error
}

func (e backendError) Error() string {
	return "cannot reach the task service right now, try again later"
}

func (e backendError) Unwrap() error { return e.err }

func errBackend(err error) error {
	return backendError{err: err}
}
