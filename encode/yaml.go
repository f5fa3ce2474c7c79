package encode

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/value"
)

// ToYAML renders v as a block YAML document. Mapping order is kept.
func ToYAML(v *value.Value, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	es.format = format.YAMLFormat
	return marshalYAML(v, es)
}

// ToJSON renders v as JSON. Infinite and NaN floats are an error.
func ToJSON(v *value.Value, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	es.format = format.JSONFormat
	return marshalYAML(v, es)
}

func marshalYAML(v *value.Value, es *EncState) ([]byte, error) {
	x, err := toYAML(v, es)
	if err != nil {
		return nil, err
	}
	if es.format.IsJSON() {
		d, err := yaml.MarshalWithOptions(x, yaml.JSON())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return d, nil
	}
	d, err := yaml.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}

func toYAML(v *value.Value, es *EncState) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Type {
	case value.NullType:
		return nil, nil
	case value.BoolType:
		return v.Bool, nil
	case value.IntType:
		return v.Int, nil
	case value.FloatType:
		if es.format.IsJSON() && (math.IsInf(v.Float, 0) || math.IsNaN(v.Float)) {
			return nil, fmt.Errorf("%w: %s has no json form", ErrEncoding, formatFloat(v.Float))
		}
		return v.Float, nil
	case value.StringType, value.RawType:
		return v.String, nil
	case value.OpaqueType:
		return es.objectTag + opaquePayload(v, es), nil
	case value.SequenceType:
		res := make([]any, len(v.Values))
		for i, elt := range v.Values {
			x, err := toYAML(elt, es)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case value.MappingType:
		res := make(yaml.MapSlice, 0, len(v.Keys))
		for i, k := range v.Keys {
			x, err := toYAML(v.Values[i], es)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: x})
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type)
}
