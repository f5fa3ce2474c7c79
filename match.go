package yflow

import (
	"github.com/signadot/yflow/debug"
	"github.com/signadot/yflow/value"
)

// Match reports whether doc matches pattern. A null pattern matches
// anything, a mapping pattern matches a mapping having at least its keys
// with matching values, a sequence pattern matches element by element and
// any other pattern must compare equal.
func Match(doc, pattern *value.Value) bool {
	if debug.Eval() {
		debug.Logf("match", "doc", doc, "pattern", pattern)
	}
	if pattern == nil || pattern.Type == value.NullType {
		return true
	}
	if doc == nil {
		return false
	}
	switch pattern.Type {
	case value.MappingType:
		return doc.Type == value.MappingType && matchMapping(doc, pattern)
	case value.SequenceType:
		return doc.Type == value.SequenceType && matchSequence(doc, pattern)
	}
	return value.Equal(doc, pattern)
}

func matchMapping(doc, pattern *value.Value) bool {
	for i, k := range pattern.Keys {
		dv := doc.Get(k)
		if dv == nil {
			return false
		}
		if !Match(dv, pattern.Values[i]) {
			return false
		}
	}
	return true
}

func matchSequence(doc, pattern *value.Value) bool {
	if len(doc.Values) != len(pattern.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], pattern.Values[i]) {
			return false
		}
	}
	return true
}

// Trim filters doc to the parts named by pattern. Mapping keys absent
// from the pattern are dropped; for sequences each pattern element keeps
// the first unused matching element of doc.
func Trim(pattern, doc *value.Value) *value.Value {
	if doc == nil {
		return nil
	}
	if pattern == nil {
		return doc.Clone()
	}
	switch {
	case pattern.Type == value.MappingType && doc.Type == value.MappingType:
		res := value.NewMapping()
		for i, k := range doc.Keys {
			pv := pattern.Get(k)
			if pv == nil {
				continue
			}
			res.Set(k, Trim(pv, doc.Values[i]))
		}
		return res
	case pattern.Type == value.SequenceType && doc.Type == value.SequenceType:
		res := value.NewSequence()
		used := make([]bool, len(doc.Values))
		for _, pv := range pattern.Values {
			for i, dv := range doc.Values {
				if used[i] || !Match(dv, pv) {
					continue
				}
				res.Append(Trim(pv, dv))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
