package libdiff

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/signadot/yflow/value"
)

var ErrDiff = errors.New("invalid diff")

func MakeOp(op string, v *value.Value) *value.Value {
	return value.FromKeyVals([]value.KeyVal{{Key: op, Val: v}})
}

// MakeDiff returns an insert diff if from is nil, a delete diff if to is
// nil and a replace diff otherwise.
func MakeDiff(from, to *value.Value) *value.Value {
	switch {
	case from == nil:
		return MakeOp(InsertOp, to.Clone())
	case to == nil:
		return MakeOp(DeleteOp, from.Clone())
	default:
		return MakeOp(ReplaceOp, value.FromKeyVals([]value.KeyVal{
			{Key: "from", Val: from.Clone()},
			{Key: "to", Val: to.Clone()},
		}))
	}
}

// SplitOp returns the operation and argument of a diff.
func SplitOp(diff *value.Value) (string, *value.Value, error) {
	if diff == nil || diff.Type != value.MappingType || len(diff.Keys) != 1 {
		return "", nil, fmt.Errorf("%w: not a single operation mapping", ErrDiff)
	}
	op := diff.Keys[0]
	switch op {
	case DeleteOp, InsertOp, ReplaceOp, MappingOp, SequenceOp, StringOp:
		return op, diff.Values[0], nil
	}
	return "", nil, fmt.Errorf("%w: unknown operation %q", ErrDiff, op)
}

func fromTo(arg *value.Value) (*value.Value, *value.Value, error) {
	from, to := arg.Get("from"), arg.Get("to")
	if from == nil || to == nil {
		return nil, nil, fmt.Errorf("%w: %s needs from and to", ErrDiff, ReplaceOp)
	}
	return from, to, nil
}

func intKeysMap(m map[int]*value.Value) *value.Value {
	res := value.NewMapping()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Set(strconv.Itoa(k), m[k])
	}
	return res
}

// intKeys reads a position keyed diff. A mapping keyed 0..n-1 dumps as a
// sequence, so sequences are accepted as well.
func intKeys(v *value.Value) (map[int]*value.Value, []int, error) {
	res := map[int]*value.Value{}
	switch v.Type {
	case value.SequenceType:
		for i, elt := range v.Values {
			res[i] = elt
		}
	case value.MappingType:
		for i, k := range v.Keys {
			n, err := strconv.Atoi(k)
			if err != nil || n < 0 {
				return nil, nil, fmt.Errorf("%w: bad position %q", ErrDiff, k)
			}
			res[n] = v.Values[i]
		}
	default:
		return nil, nil, fmt.Errorf("%w: positions must be a mapping, got %s", ErrDiff, v.Type)
	}
	return res, slices.Sorted(maps.Keys(res)), nil
}
