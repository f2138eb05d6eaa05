// Package sigshim is the process-level signal wrapper around a clique
// enumeration run. It installs handlers for the interactive interrupt and
// alarm signals for the duration of a run, bridges them to the clique
// package's ambient Interrupted flag and to a derived context.Context, and
// restores the previous handlers on every exit path.
//
// Embeddings that already have a cancellation story of their own can skip
// this package entirely and pass their context to Next directly.
package sigshim
