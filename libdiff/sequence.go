package libdiff

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/yflow/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSequence diffs two sequences by index.
//
//  1. summarize each element: its type, and for scalars its value
//  2. diff the sequences of summaries
//  3. for elements kept with the same summary, recurse with df
//  4. removed and added elements become delete and insert ops
//
// Every kept, removed or added element takes one position in the result.
func DiffSequence(from, to *value.Value, df DiffFunc) *value.Value {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	resMap := make(map[int]*value.Value, len(diffs))

	fi, ti, ri := 0, 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				resMap[ri] = MakeDiff(from.Values[fi], nil)
				ri++
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				if d := df(from.Values[fi], to.Values[ti]); d != nil {
					resMap[ri] = d
				}
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				resMap[ri] = MakeDiff(nil, to.Values[ti])
				ri++
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return MakeOp(SequenceOp, intKeysMap(resMap))
}

func mapValues(m map[string]rune, v *value.Value) []rune {
	rs := make([]rune, len(v.Values))
	for i, elt := range v.Values {
		sum := summaryStr(elt)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v *value.Value) string {
	if v == nil {
		return value.NullType.String()
	}
	switch v.Type {
	case value.MappingType, value.SequenceType, value.NullType:
		return v.Type.String()
	case value.BoolType:
		return v.Type.String() + "-" + strconv.FormatBool(v.Bool)
	case value.StringType:
		if strings.Contains(v.String, "\n") {
			return v.Type.String() + "/m"
		}
		return v.Type.String() + "-" + v.String
	case value.IntType:
		return v.Type.String() + "-" + strconv.FormatInt(v.Int, 10)
	case value.FloatType:
		return v.Type.String() + "-" + strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return v.Type.String() + "-" + v.String
	}
}

func patchSequence(doc, arg *value.Value, pf PatchFunc) (*value.Value, error) {
	if doc.Type != value.SequenceType {
		return nil, errorf("%s applied to %s", SequenceOp, doc.Type)
	}
	ops, keys, err := intKeys(arg)
	if err != nil {
		return nil, err
	}
	vals := doc.Values
	res := value.NewSequence()
	fi, ri := 0, 0
	for _, k := range keys {
		if k < ri || k-ri > len(vals)-fi {
			return nil, errorf("%s position %d out of range", SequenceOp, k)
		}
		for _, elt := range vals[fi : fi+k-ri] {
			res.Append(elt.Clone())
		}
		fi += k - ri
		ri = k + 1
		op, opArg, err := SplitOp(ops[k])
		if err != nil {
			return nil, err
		}
		switch op {
		case InsertOp:
			res.Append(opArg.Clone())
			continue
		case DeleteOp:
			if fi >= len(vals) || !value.Equal(vals[fi], opArg) {
				return nil, conflictf("unexpected value at index %d", fi)
			}
			fi++
			continue
		}
		if fi >= len(vals) {
			return nil, errorf("%s position %d past the end", SequenceOp, k)
		}
		elt, err := pf(vals[fi], ops[k])
		if err != nil {
			return nil, err
		}
		res.Append(elt)
		fi++
	}
	for _, elt := range vals[fi:] {
		res.Append(elt.Clone())
	}
	return res, nil
}
