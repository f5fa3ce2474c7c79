package value

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
)

// FromAny converts a native Go value to a Value. Maps are given sorted
// keys. Values of unsupported kinds become opaque objects which the
// encoder serializes with its object codec.
func FromAny(x any) *Value {
	switch v := x.(type) {
	case nil:
		return Null()
	case *Value:
		return v
	case Value:
		return &v
	case bool:
		return FromBool(v)
	case int:
		return FromInt(int64(v))
	case int8:
		return FromInt(int64(v))
	case int16:
		return FromInt(int64(v))
	case int32:
		return FromInt(int64(v))
	case int64:
		return FromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return FromInt(int64(v))
	case uint16:
		return FromInt(int64(v))
	case uint32:
		return FromInt(int64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return FromFloat(float64(v))
	case float64:
		return FromFloat(v)
	case string:
		return FromString(v)
	case []byte:
		return FromString(string(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return FromInt(i)
		}
		f, err := v.Float64()
		if err != nil {
			return FromString(v.String())
		}
		return FromFloat(f)
	case []any:
		res := NewSequence()
		for _, elt := range v {
			res.Append(FromAny(elt))
		}
		return res
	case []*Value:
		return FromSlice(v)
	case map[string]any:
		res := NewMapping()
		for _, k := range sortedKeys(v) {
			res.Set(k, FromAny(v[k]))
		}
		return res
	case map[string]*Value:
		return FromMap(v)
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromUint(u uint64) *Value {
	if u > math.MaxInt64 {
		return FromFloat(float64(u))
	}
	return FromInt(int64(u))
}

func fromReflect(rv reflect.Value) *Value {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NewSequence()
		}
		res := NewSequence()
		for i := 0; i < rv.Len(); i++ {
			res.Append(FromAny(rv.Index(i).Interface()))
		}
		return res
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := NewMapping()
		for _, k := range keys {
			kv := reflect.ValueOf(k).Convert(rv.Type().Key())
			res.Set(k, FromAny(rv.MapIndex(kv).Interface()))
		}
		return res
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
	case reflect.String:
		return FromString(rv.String())
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())
	case reflect.Invalid:
		return Null()
	}
	return Opaque("", rv.Interface())
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Any converts v to native Go values: nil, bool, int64, float64, string,
// []any and map[string]any. Opaque values yield their decoded object when
// present and their payload otherwise.
func (v *Value) Any() any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int
	case FloatType:
		return v.Float
	case StringType, RawType:
		return v.String
	case OpaqueType:
		if v.Object != nil {
			return v.Object
		}
		return v.String
	case SequenceType:
		res := make([]any, len(v.Values))
		for i, elt := range v.Values {
			res[i] = elt.Any()
		}
		return res
	case MappingType:
		res := make(map[string]any, len(v.Keys))
		for i, k := range v.Keys {
			res[k] = v.Values[i].Any()
		}
		return res
	}
	return nil
}
