package value

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType, OpaqueType, RawType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case SequenceType:
		return compareSequences(a, b)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same tree.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Sequence < Mapping < Opaque < Raw
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType:
		return 3
	case SequenceType:
		return 4
	case MappingType:
		return 5
	case OpaqueType:
		return 6
	case RawType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Int < Float at equal magnitude so that 1 and 1.0 stay distinct
	if a.Type == IntType && b.Type == IntType {
		return cmp.Compare(a.Int, b.Int)
	}
	if c := cmp.Compare(a.number(), b.number()); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

func (v *Value) number() float64 {
	if v.Type == IntType {
		return float64(v.Int)
	}
	return v.Float
}

func compareSequences(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMappings(a, b *Value) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
