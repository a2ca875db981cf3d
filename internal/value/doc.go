// Package value defines the closed set of shapes a workflow host passes to
// the script encoders: null, booleans, integers, floats, strings, paths,
// sequences, ordered mappings and named lists.
//
// Named lists are lists whose positions may also be reached by name, as the
// host exposes input and output files. Values are never mutated by the
// encoders.
//
// Anything outside the closed set travels as a Foreign value. Encoders turn
// Foreign values into regular ones with a Coercer supplied by the caller.
package value
