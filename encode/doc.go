// Package encode dumps values as inline flow text.
//
// # Usage
//
//	v := value.FromKeyVals([]value.KeyVal{
//	    {Key: "name", Val: value.FromString("alice")},
//	    {Key: "age", Val: value.FromInt(30)},
//	})
//	s := encode.Dump(v) // { name: alice, age: 30 }
//
//	// Write with colors, or as block YAML or JSON
//	err := encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//	err = encode.Encode(v, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Strings that would load back as another type are quoted, so loading
// the output of Dump and dumping again gives the same text.
//
// # Related Packages
//
//   - github.com/signadot/yflow/value - value representation
//   - github.com/signadot/yflow/parse - Load inline text
package encode
