package value

import (
	jsoniter "github.com/json-iterator/go"
)

// ObjectCodec serializes application objects carried by opaque values.
type ObjectCodec interface {
	Marshal(obj any) (string, error)
	Unmarshal(payload string) (any, error)
}

type jsonCodec struct {
	api jsoniter.API
}

// JSONCodec encodes objects as compact JSON. Decoding yields the generic
// JSON shapes (map[string]any, []any, float64, ...).
var JSONCodec ObjectCodec = jsonCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}

func (c jsonCodec) Marshal(obj any) (string, error) {
	return c.api.MarshalToString(obj)
}

func (c jsonCodec) Unmarshal(payload string) (any, error) {
	var res any
	if err := c.api.UnmarshalFromString(payload, &res); err != nil {
		return nil, err
	}
	return res, nil
}
