package libdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/signadot/yflow/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs two strings by runes. When most of the text changed
// the result is a plain replace.
func DiffString(from, to *value.Value) *value.Value {
	if from.String == to.String {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n")
	diffs := diffCfg.DiffMain(from.String, to.String, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	resMap := make(map[int]*value.Value)
	diffSize := 0
	ri := 0
	lastDel := -1
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			resMap[ri] = MakeOp(DeleteOp, value.FromString(diff.Text))
			lastDel = ri
			diffSize += len(diff.Text)
		case diffpatch.DiffInsert:
			if del := resMap[lastDel]; lastDel != -1 && del != nil {
				// insert after delete -> make replace
				resMap[lastDel] = MakeDiff(del.Values[0], value.FromString(diff.Text))
				if len(diff.Text) > len(del.Values[0].String) {
					diffSize += len(diff.Text) - len(del.Values[0].String)
				}
			} else {
				resMap[ri] = MakeOp(InsertOp, value.FromString(diff.Text))
				diffSize += len(diff.Text)
			}
			lastDel = -1
		case diffpatch.DiffEqual:
			lastDel = -1
		}
		ri += n
	}
	if diffSize > min(len(from.String), len(to.String))/2 {
		return MakeDiff(from, to)
	}
	return MakeOp(StringOp, intKeysMap(resMap))
}

func patchString(doc, arg *value.Value) (*value.Value, error) {
	if doc.Type != value.StringType {
		return nil, errorf("%s applied to %s", StringOp, doc.Type)
	}
	ops, keys, err := intKeys(arg)
	if err != nil {
		return nil, err
	}
	txt := []rune(doc.String)
	res := make([]rune, 0, len(txt))
	fi, ri := 0, 0
	for _, k := range keys {
		if k < ri || k-ri > len(txt)-fi {
			return nil, errorf("%s position %d out of range", StringOp, k)
		}
		res = append(res, txt[fi:fi+k-ri]...)
		fi += k - ri
		ri = k
		op, opArg, err := SplitOp(ops[k])
		if err != nil {
			return nil, err
		}
		if opArg.Type != value.StringType && op != ReplaceOp {
			return nil, errorf("%s operand must be a string, got %s", op, opArg.Type)
		}
		switch op {
		case DeleteOp:
			del := []rune(opArg.String)
			if !runesHasPrefix(txt[fi:], del) {
				return nil, conflictf("expected %q at %d", opArg.String, fi)
			}
			fi += len(del)
			ri += len(del)
		case InsertOp:
			add := []rune(opArg.String)
			res = append(res, add...)
			ri += len(add)
		case ReplaceOp:
			from, to, err := fromTo(opArg)
			if err != nil {
				return nil, err
			}
			del, add := []rune(from.String), []rune(to.String)
			if !runesHasPrefix(txt[fi:], del) {
				return nil, conflictf("expected %q at %d", from.String, fi)
			}
			res = append(res, add...)
			fi += len(del)
			ri += len(del) + len(add)
		default:
			return nil, errorf("unexpected %s in %s", op, StringOp)
		}
	}
	res = append(res, txt[fi:]...)
	return value.FromString(string(res)), nil
}

func runesHasPrefix(txt, prefix []rune) bool {
	if len(prefix) > len(txt) {
		return false
	}
	for i, r := range prefix {
		if txt[i] != r {
			return false
		}
	}
	return true
}
