// Package kpclique enumerates k-cliques of k-partite graphs.
//
// A k-partite graph has its vertices split into k non-empty parts with all
// edges crossing parts; a k-clique is then k mutually adjacent vertices,
// necessarily one per part. This module enumerates them lazily: cliques are
// produced one at a time, on demand, from a bitset-backed backtracking
// search.
//
// The module is organized under three packages:
//
//	clique/   — the search engines (weighted and first-fit strategies)
//	builder/  — deterministic k-partite test graphs + brute-force oracle
//	sigshim/  — process-signal wrapper bridging SIGINT/SIGALRM to the
//	            engines' cooperative cancellation
//
// Most callers only need clique:
//
//	eng, err := clique.NewKPartiteKClique(incidences, firstPerPart)
//	if err != nil { ... }
//	for {
//		ok, err := eng.Next(ctx)
//		if err != nil || !ok {
//			break
//		}
//		use(eng.Clique())
//	}
package kpclique
