package service

import "fmt"

// ValidationError reports malformed or incomplete caller input: wrong
// answer counts, out-of-range scores, missing question metadata. It is
// surfaced to the caller as-is and never retried internally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvariantError reports a lookup miss in a static table that Verify
// declared complete. It indicates a data bug in this codebase, not a
// user error, and should be surfaced upstream as a generic failure.
type InvariantError struct {
	Table string
	Key   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s table has no entry for %q", e.Table, e.Key)
}
