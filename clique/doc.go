// Package clique enumerates k-cliques of a k-partite graph: vertex sets of
// size k, one vertex per part, mutually adjacent. Cliques are produced one
// at a time on demand through Next, suitable as a lazy iterator over a
// search space that can be combinatorially large.
//
// Two search strategies are provided behind the same external shape:
//
//   - Engine ("weighted") orders candidates by a recomputed obstruction
//     weight, descending into the branch that is expected to prune fastest.
//   - FindCliqueEngine ("first-fit") always branches on the currently
//     smallest candidate part, with no weight bookkeeping.
//
// Both are single-threaded and synchronous; Next blocks until it finds the
// next clique, exhausts the search space, or observes cancellation via the
// supplied context.Context or the ambient Interrupted flag.
package clique
