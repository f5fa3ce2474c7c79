package value

func Truth(v *Value) bool {
	switch v.Type {
	case MappingType, SequenceType:
		return len(v.Values) != 0
	case StringType, RawType:
		return v.String != ""
	case IntType:
		return v.Int != 0
	case FloatType:
		return v.Float != 0.0
	case BoolType:
		return v.Bool
	case OpaqueType:
		return v.Object != nil || v.String != ""
	case NullType:
		return false
	default:
		panic("type")
	}
}
