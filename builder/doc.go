// Package builder generates deterministic k-partite test graphs and a
// brute-force reference oracle for them.
//
// This package is a test-support dependency of the clique package, not part
// of its public search API.
package builder
