// Package patch applies RFC 6902 JSON patches to values. The patch itself
// is a value, so it may be written inline:
//
//	[{op: replace, path: /spec/replicas, value: 3}]
//
// Documents pass through JSON on their way in and out; object keys of the
// result come back sorted and values with no JSON form are rejected.
package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/yflow/debug"
	"github.com/signadot/yflow/value"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("json patch")

// Patch is a decoded operation list.
type Patch struct {
	src *value.Value
	ops jsonpatch.Patch
}

// Decode checks p is a sequence of operations and decodes it.
func Decode(p *value.Value) (*Patch, error) {
	if p == nil || p.Type != value.SequenceType {
		return nil, fmt.Errorf("%w: operations must be a sequence", ErrPatch)
	}
	d, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	for i, op := range ops {
		if op.Kind() == "unknown" {
			return nil, fmt.Errorf("%w: operation %d has no op", ErrPatch, i)
		}
	}
	return &Patch{src: p, ops: ops}, nil
}

func (p *Patch) Len() int { return len(p.ops) }

// Value returns the operations as given to Decode.
func (p *Patch) Value() *value.Value { return p.src }

// Apply returns the patched document. doc is not modified.
func (p *Patch) Apply(doc *value.Value) (*value.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		if debug.Eval() {
			debug.Errorf("json patch failed", err, "doc", doc, "patch", p.src)
		}
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res := &value.Value{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// Apply decodes ops and applies them to doc.
func Apply(doc, ops *value.Value) (*value.Value, error) {
	p, err := Decode(ops)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}
