// Package parse loads inline flow text into values.
//
// # Usage
//
//	// Load a sequence
//	v, err := parse.Load(`[1, two, {three: 3}]`)
//	if err != nil {
//	    return err
//	}
//
//	// Load with the 1.1 boolean vocabulary
//	v, err := parse.Load(`yes`, parse.SpecVersion(format.Version11))
//
// Sequences and mappings are parsed by recursive descent over a
// token.Scanner. Unquoted scalars are typed by an eval.Evaluator; quoted
// scalars and mapping keys are always strings.
//
// # Related Packages
//
//   - github.com/signadot/yflow/value - value representation
//   - github.com/signadot/yflow/encode - Dump values to inline text
//   - github.com/signadot/yflow/eval - scalar typing rules
//   - github.com/signadot/yflow/token - scanning and syntax errors
package parse
