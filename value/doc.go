// Package value holds the in-memory tree produced by loading inline text
// and consumed by dumping it.
//
// # Value Structure
//
// A Value is a tagged union. The Type field selects which of the other
// fields are meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - IntType: Int
//   - FloatType: Float, including the infinities
//   - StringType: String
//   - SequenceType: Values in index order
//   - MappingType: Keys[i] is the key of Values[i]; keys are unique and
//     kept in insertion order
//   - OpaqueType: String holds a serialized object payload and Object the
//     decoded object, if any
//   - RawType: String holds pre-rendered inline text
//
// Values built by the parser are not modified afterwards; callers building
// trees by hand use the From* constructors and Set.
//
// # Usage
//
//	v := value.FromKeyVals([]value.KeyVal{
//	    {Key: "name", Val: value.FromString("alice")},
//	    {Key: "tags", Val: value.FromSlice([]*value.Value{value.FromInt(1)})},
//	})
//	name := v.Get("name")
//
// # Related Packages
//
//   - github.com/signadot/yflow/parse - Load inline text to values
//   - github.com/signadot/yflow/encode - Dump values to inline text
package value
