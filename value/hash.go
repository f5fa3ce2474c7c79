package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, stable within a process.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("value: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(v.Type))

	var b [8]byte
	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int))
		h.Write(b[:])
	case FloatType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Float))
		h.Write(b[:])
	case StringType, OpaqueType, RawType:
		h.WriteString(v.String)
	case SequenceType:
		for _, elt := range v.Values {
			binary.LittleEndian.PutUint64(b[:], elt.Hash())
			h.Write(b[:])
		}
	case MappingType:
		for i, k := range v.Keys {
			h.WriteString(k)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], v.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
