package libdiff

import (
	"strconv"

	"github.com/signadot/yflow/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffMapping diffs the key sequences of two mappings; values under keys
// present in both are diffed with df.
func DiffMapping(from, to *value.Value, df DiffFunc) *value.Value {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, from)
	toRunes := mapKeysTo(keyMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := value.NewMapping()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				k := runeMap[r]
				if prev := res.Get(k); prev != nil {
					// moved key
					setDiff(res, k, df(from.Values[fi], prev.Values[0]))
				} else {
					res.Set(k, MakeDiff(from.Values[fi], nil))
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if d := df(from.Values[fi], to.Values[ti]); d != nil {
					res.Set(runeMap[r], d)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				k := runeMap[r]
				if prev := res.Get(k); prev != nil {
					setDiff(res, k, df(prev.Values[0], to.Values[ti]))
				} else {
					res.Set(k, MakeDiff(nil, to.Values[ti]))
				}
				ti++
			}
		}
	}
	if len(res.Keys) == 0 {
		return nil
	}
	return MakeOp(MappingOp, res)
}

func setDiff(res *value.Value, k string, d *value.Value) {
	if d == nil {
		res.Delete(k)
		return
	}
	res.Set(k, d)
}

func mapKeysTo(m map[string]rune, im map[rune]string, v *value.Value) []rune {
	rs := make([]rune, len(v.Keys))
	for i, k := range v.Keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

func patchMapping(doc, arg *value.Value, pf PatchFunc) (*value.Value, error) {
	if doc.Type != value.MappingType {
		return nil, errorf("%s applied to %s", MappingOp, doc.Type)
	}
	arg, err := keyed(arg)
	if err != nil {
		return nil, err
	}
	res := doc.Clone()
	for i, k := range arg.Keys {
		op, opArg, err := SplitOp(arg.Values[i])
		if err != nil {
			return nil, err
		}
		cur := res.Get(k)
		switch op {
		case InsertOp:
			if cur != nil {
				return nil, conflictf("key %q already present", k)
			}
			res.Set(k, opArg.Clone())
		case DeleteOp:
			if cur == nil || !value.Equal(cur, opArg) {
				return nil, conflictf("unexpected value under key %q", k)
			}
			res.Delete(k)
		default:
			if cur == nil {
				return nil, conflictf("missing key %q", k)
			}
			v, err := pf(cur, arg.Values[i])
			if err != nil {
				return nil, err
			}
			res.Set(k, v)
		}
	}
	return res, nil
}

// keyed reads a key to diff mapping, which dumps as a sequence when its
// keys are 0..n-1.
func keyed(arg *value.Value) (*value.Value, error) {
	switch arg.Type {
	case value.MappingType:
		return arg, nil
	case value.SequenceType:
		res := value.NewMapping()
		for i, elt := range arg.Values {
			res.Set(strconv.Itoa(i), elt)
		}
		return res, nil
	}
	return nil, errorf("%s needs a mapping, got %s", MappingOp, arg.Type)
}
