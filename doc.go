// Package yflow loads and dumps inline (flow) YAML fragments such as
// `[a, {b: 1}]`.
//
// # Usage
//
//	v, err := yflow.Load(`{foo: bar, baz: 12}`)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(yflow.Dump(v)) // { foo: bar, baz: 12 }
//
//	// YAML 1.1 booleans
//	v, err = yflow.Load(`[yes, no]`, yflow.WithSpecVersion(format.Version11))
//
// Load and Dump are thin wrappers over the parse and encode packages,
// sharing one set of options so both sides agree on the boolean
// vocabulary and the object tag.
package yflow
