package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/yflow/value"
)

// ErrConflict is returned when a diff does not apply to a document.
var ErrConflict = errors.New("diff conflict")

type PatchFunc func(doc, diff *value.Value) (*value.Value, error)

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrDiff}, args...)...)
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConflict}, args...)...)
}

// Patch applies diff to doc and returns the result. doc is not modified.
// A nil diff returns a copy of doc.
func Patch(doc, diff *value.Value) (*value.Value, error) {
	if diff == nil {
		if doc == nil {
			return nil, nil
		}
		return doc.Clone(), nil
	}
	op, arg, err := SplitOp(diff)
	if err != nil {
		return nil, err
	}
	switch op {
	case InsertOp:
		if doc != nil {
			return nil, conflictf("insert over existing %s", doc.Type)
		}
		return arg.Clone(), nil
	case DeleteOp:
		if doc == nil || !value.Equal(doc, arg) {
			return nil, conflictf("deleted value differs")
		}
		return nil, nil
	case ReplaceOp:
		from, to, err := fromTo(arg)
		if err != nil {
			return nil, err
		}
		if doc == nil || !value.Equal(doc, from) {
			return nil, conflictf("replaced value differs")
		}
		return to.Clone(), nil
	}
	if doc == nil {
		return nil, conflictf("%s applied to nothing", op)
	}
	switch op {
	case StringOp:
		return patchString(doc, arg)
	case SequenceOp:
		return patchSequence(doc, arg, Patch)
	default:
		return patchMapping(doc, arg, Patch)
	}
}
