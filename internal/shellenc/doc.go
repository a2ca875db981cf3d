// Package shellenc encodes values as bash associative arrays.
//
// Bash arrays hold strings only and cannot nest, so every value is reduced
// to text before it is stored. Named lists become a single array keyed by
// 0-based position with an extra key for each name:
//
//	( [0]="a.txt" [1]="b.txt" [reads]="b.txt" )
//
// Foreign values the coercer cannot convert, at any depth, fail with
// value.UnsupportedValueError instead of reaching the script.
//
// See https://www.gnu.org/software/bash/manual/html_node/Arrays.html.
package shellenc
