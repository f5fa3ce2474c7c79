package encode

import (
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/value"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// SpecVersion selects the boolean vocabulary that forces quoting.
func SpecVersion(v format.Version) EncodeOption {
	return func(es *EncState) { es.version = v }
}
func ObjectCodec(c value.ObjectCodec) EncodeOption {
	return func(es *EncState) { es.codec = c }
}
func ObjectTag(tag string) EncodeOption {
	return func(es *EncState) { es.objectTag = tag }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
