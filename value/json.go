package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var ErrJSON = errors.New("json")

// MarshalJSON writes v as plain JSON, keeping mapping key order.
// Infinities and NaN have no JSON form and are an error.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	switch v.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case IntType:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
	case FloatType:
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return fmt.Errorf("%w: cannot encode %v", ErrJSON, v.Float)
		}
		buf.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case StringType, RawType:
		return writeJSONString(buf, v.String)
	case OpaqueType:
		if v.Object == nil {
			return writeJSONString(buf, v.String)
		}
		d, err := json.Marshal(v.Object)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}
		buf.Write(d)
	case SequenceType:
		buf.WriteByte('[')
		for i, elt := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, elt); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MappingType:
		buf.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, v.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown type %s", ErrJSON, v.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// UnmarshalJSON reads plain JSON, keeping object key order. Numbers
// without fraction or exponent that fit in an int64 become IntType.
func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := readJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrJSON)
	}
	*v = *res
	return nil
}

func readJSON(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch x := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return jsonNumber(x), nil
	case json.Delim:
		switch x {
		case '[':
			res := NewSequence()
			for dec.More() {
				elt, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Append(elt)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return res, nil
		case '{':
			res := NewMapping()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: unexpected key %v", ErrJSON, kt)
				}
				val, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
}

func jsonNumber(n json.Number) *Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return FromString(s)
	}
	return FromFloat(f)
}
