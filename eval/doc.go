// Package eval classifies the raw text of an unquoted scalar and converts
// it to a typed value.
//
// # Rules
//
// [Evaluator.Scalar] trims the text and applies the first matching rule:
//
//  1. null, ~ or empty text: null
//  2. !str prefix: the rest as a string
//  3. "! " prefix: the rest scanned as a scalar and coerced to an integer
//  4. object tag prefix: an opaque object
//  5. all digits: an integer, octal with a leading 0
//  6. true vocabulary: true
//  7. false vocabulary: false
//  8. 0x prefix: a hexadecimal integer
//  9. numeric text: a float
//  10. .inf or .nan: positive infinity
//  11. -.inf: negative infinity
//  12. digits with thousands commas: an integer, or a float with a fraction
//  13. timestamp: Unix seconds
//  14. anything else: the text as a string
//
// The boolean vocabularies depend on the YAML version, see
// [github.com/signadot/yflow/format.Version].
package eval
