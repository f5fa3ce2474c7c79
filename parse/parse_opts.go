package parse

import (
	"time"

	"github.com/signadot/yflow/eval"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/value"
)

type parseOpts struct {
	eval     eval.Evaluator
	strict   bool
	filename string
}

type ParseOption func(*parseOpts)

// SpecVersion selects the boolean vocabulary.
func SpecVersion(v format.Version) ParseOption {
	return func(o *parseOpts) { o.eval.Version = v }
}

// ObjectCodec decodes object tagged scalars into Opaque values.
func ObjectCodec(c value.ObjectCodec) ParseOption {
	return func(o *parseOpts) { o.eval.Codec = c }
}
func ObjectTag(tag string) ParseOption {
	return func(o *parseOpts) { o.eval.ObjectTag = tag }
}

// Location is used for timestamps without a zone.
func Location(loc *time.Location) ParseOption {
	return func(o *parseOpts) { o.eval.Location = loc }
}

// Strict makes text after a top level sequence, mapping or quoted scalar
// an error.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// GetEvaluator returns the scalar evaluator configured by opts.
func GetEvaluator(opts ...ParseOption) eval.Evaluator {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return o.eval
}
