package libdiff

import (
	"github.com/signadot/yflow/value"
)

// Reverse returns the diff undoing diff.
func Reverse(diff *value.Value) (*value.Value, error) {
	if diff == nil {
		return nil, nil
	}
	op, arg, err := SplitOp(diff)
	if err != nil {
		return nil, err
	}
	switch op {
	case InsertOp:
		return MakeOp(DeleteOp, arg.Clone()), nil
	case DeleteOp:
		return MakeOp(InsertOp, arg.Clone()), nil
	case ReplaceOp:
		from, to, err := fromTo(arg)
		if err != nil {
			return nil, err
		}
		return MakeDiff(to, from), nil
	case MappingOp:
		arg, err = keyed(arg)
		if err != nil {
			return nil, err
		}
		res := value.NewMapping()
		for i, k := range arg.Keys {
			rev, err := Reverse(arg.Values[i])
			if err != nil {
				return nil, err
			}
			res.Set(k, rev)
		}
		return MakeOp(op, res), nil
	default:
		ops, keys, err := intKeys(arg)
		if err != nil {
			return nil, err
		}
		res := make(map[int]*value.Value, len(ops))
		for _, k := range keys {
			rev, err := Reverse(ops[k])
			if err != nil {
				return nil, err
			}
			res[k] = rev
		}
		return MakeOp(op, intKeysMap(res)), nil
	}
}
