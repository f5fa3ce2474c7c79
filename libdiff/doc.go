// Package libdiff computes and applies structural diffs of values.
//
// # Usage
//
//	// Compute the diff between two values, nil if they are equal
//	diff := libdiff.Diff(from, to)
//
//	// Apply a diff
//	patched, err := libdiff.Patch(from, diff)
//
//	// Undo it
//	rev, err := libdiff.Reverse(diff)
//
// A diff is itself a value, so it can be dumped and loaded as inline text.
// Every diff is a mapping with a single operation key:
//
//	{ '!insert': v }                        v was added
//	{ '!delete': v }                        v was removed
//	{ '!replace': { from: a, to: b } }      a became b
//	{ '!mapdiff': { key: diff, ... } }      per key changes of a mapping
//	{ '!arraydiff': { 2: diff, ... } }      per index changes of a sequence
//	{ '!strdiff': { 0: diff, ... } }        edits of a string
//
// Sequence and string diffs are keyed by position in the merged sequence
// of kept, deleted and inserted items.
//
// # Related Packages
//
//   - github.com/signadot/yflow/value - value representation
package libdiff
