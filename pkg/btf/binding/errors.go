package binding

import "github.com/pkg/errors"

// LogicError marks an invariant violation in an already-decoded entry
// vector — an unresolved type id, a Func whose type id is not a
// function prototype, or a kind that cannot appear as a field/param
// type. Per spec.md §7, these are
// programmer/logic errors, not user-facing decode errors: the emitter
// assumes it was handed a previously-accepted entry vector.
type LogicError struct {
	Msg string
}

func (e *LogicError) Error() string { return "binding: " + e.Msg }

func logicErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&LogicError{Msg: errors.Errorf(format, args...).Error()})
}
