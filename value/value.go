package value

import (
	"maps"
	"slices"
	"strconv"
)

type Value struct {
	Type Type

	Bool   bool
	Int    int64
	Float  float64
	String string

	Keys   []string
	Values []*Value

	Object any
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float: f}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

// Opaque returns an opaque object value. payload is the serialized form
// and obj the decoded object, either may be empty.
func Opaque(payload string, obj any) *Value {
	return &Value{Type: OpaqueType, String: payload, Object: obj}
}

// Raw returns a value which dumps as text, unchanged.
func Raw(text string) *Value {
	return &Value{Type: RawType, String: text}
}

func FromSlice(vs []*Value) *Value {
	res := &Value{Type: SequenceType}
	res.Values = make([]*Value, len(vs))
	copy(res.Values, vs)
	return res
}

func NewSequence() *Value {
	return &Value{Type: SequenceType, Values: []*Value{}}
}

func NewMapping() *Value {
	return &Value{Type: MappingType, Keys: []string{}, Values: []*Value{}}
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds a mapping in the order of kvs. A repeated key
// replaces the earlier value in its original position.
func FromKeyVals(kvs []KeyVal) *Value {
	res := NewMapping()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromMap builds a mapping with keys in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := NewMapping()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Set(k, m[k])
	}
	return res
}

// Append adds an element to a sequence.
func (v *Value) Append(elt *Value) *Value {
	v.Values = append(v.Values, elt)
	return v
}

// Set stores val under key in a mapping. An existing key keeps its slot.
func (v *Value) Set(key string, val *Value) *Value {
	if val == nil {
		val = Null()
	}
	if i := v.KeyIndex(key); i != -1 {
		v.Values[i] = val
		return v
	}
	v.Keys = append(v.Keys, key)
	v.Values = append(v.Values, val)
	return v
}

// Delete removes key from a mapping and reports whether it was present.
func (v *Value) Delete(key string) bool {
	i := v.KeyIndex(key)
	if i == -1 {
		return false
	}
	v.Keys = slices.Delete(v.Keys, i, i+1)
	v.Values = slices.Delete(v.Values, i, i+1)
	return true
}

func (v *Value) KeyIndex(key string) int {
	if v.Type != MappingType {
		return -1
	}
	return slices.Index(v.Keys, key)
}

// Get returns the value of key in a mapping, or nil.
func (v *Value) Get(key string) *Value {
	i := v.KeyIndex(key)
	if i == -1 {
		return nil
	}
	return v.Values[i]
}

// Index returns element i of a sequence or mapping, or nil.
func (v *Value) Index(i int) *Value {
	if v.Type != SequenceType && v.Type != MappingType {
		return nil
	}
	if i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

func (v *Value) Len() int {
	switch v.Type {
	case SequenceType, MappingType:
		return len(v.Values)
	case StringType:
		return len(v.String)
	default:
		return 0
	}
}

// IsList reports whether a composite value dumps as a sequence: any
// sequence, or a mapping keyed by exactly "0".."n-1" in order.
func (v *Value) IsList() bool {
	switch v.Type {
	case SequenceType:
		return true
	case MappingType:
		for i, k := range v.Keys {
			if k != strconv.Itoa(i) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	*dst = Value{
		Type:   v.Type,
		Bool:   v.Bool,
		Int:    v.Int,
		Float:  v.Float,
		String: v.String,
		Object: v.Object,
	}
	if v.Keys != nil {
		dst.Keys = make([]string, len(v.Keys))
		copy(dst.Keys, v.Keys)
	}
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, elt := range v.Values {
			dst.Values[i] = elt.Clone()
		}
	}
	return dst
}

func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
