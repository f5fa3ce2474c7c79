// Package format holds the small enumerations shared by the yflow parser,
// encoder and command line: the YAML version selecting the boolean
// vocabulary, and the output formats of the yflow tool.
//
// # Usage
//
//	v, err := format.ParseVersion("1.1")
//	node, err := parse.Load(`[yes, no]`, parse.SpecVersion(v))
//
// # Related Packages
//
//   - github.com/signadot/yflow/parse - Load inline text
//   - github.com/signadot/yflow/encode - Dump values to inline text
package format
