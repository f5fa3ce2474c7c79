package yflow

import (
	"github.com/signadot/yflow/debug"
	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/parse"
	"github.com/signadot/yflow/token"
	"github.com/signadot/yflow/value"
)

// ErrMalformed is wrapped by every error returned from Load.
var ErrMalformed = token.ErrMalformed

// Options holds the settings shared by Load and Dump.
type Options struct {
	Version   format.Version
	Codec     value.ObjectCodec
	ObjectTag string
	Strict    bool
}

type Option func(*Options)

func WithSpecVersion(v format.Version) Option {
	return func(o *Options) { o.Version = v }
}
func WithObjectCodec(c value.ObjectCodec) Option {
	return func(o *Options) { o.Codec = c }
}
func WithObjectTag(tag string) Option {
	return func(o *Options) { o.ObjectTag = tag }
}

// WithStrict rejects text after a top level value.
func WithStrict(v bool) Option {
	return func(o *Options) { o.Strict = v }
}

func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *Options) ParseOptions() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.SpecVersion(o.Version),
		parse.Strict(o.Strict),
	}
	if o.Codec != nil {
		res = append(res, parse.ObjectCodec(o.Codec))
	}
	if o.ObjectTag != "" {
		res = append(res, parse.ObjectTag(o.ObjectTag))
	}
	return res
}

func (o *Options) EncodeOptions() []encode.EncodeOption {
	res := []encode.EncodeOption{encode.SpecVersion(o.Version)}
	if o.Codec != nil {
		res = append(res, encode.ObjectCodec(o.Codec))
	}
	if o.ObjectTag != "" {
		res = append(res, encode.ObjectTag(o.ObjectTag))
	}
	return res
}

// Load parses an inline fragment.
func Load(text string, opts ...Option) (*value.Value, error) {
	return parse.Load(text, NewOptions(opts...).ParseOptions()...)
}

// Dump returns the inline text of v. It never fails.
func Dump(v *value.Value, opts ...Option) string {
	res := encode.Dump(v, NewOptions(opts...).EncodeOptions()...)
	if debug.Dump() {
		debug.Logf("dump", "type", typeName(v), "out", res)
	}
	return res
}

func typeName(v *value.Value) string {
	if v == nil {
		return value.NullType.String()
	}
	return v.Type.String()
}
