package libdiff

import (
	"github.com/signadot/yflow/value"
)

type DiffFunc func(from, to *value.Value) *value.Value

// Diff returns the diff turning from into to, or nil if they are equal.
func Diff(from, to *value.Value) *value.Value {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return MakeDiff(from, to)
	case from.Type != to.Type:
		return MakeDiff(from, to)
	}
	switch from.Type {
	case value.StringType:
		return DiffString(from, to)
	case value.SequenceType:
		return DiffSequence(from, to, Diff)
	case value.MappingType:
		return DiffMapping(from, to, Diff)
	}
	if value.Equal(from, to) {
		return nil
	}
	return MakeDiff(from, to)
}
