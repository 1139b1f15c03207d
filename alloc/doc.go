// Package alloc defines the fixed category set and the value-typed State and
// Floors records that every solver engine in this module reads and produces.
//
// Overview:
//
//   - Category is a small integer enum over exactly seven spending buckets;
//     Categories fixes their iteration and tie-break order.
//   - State and Floors are both [len(Categories)]int arrays wrapped in named
//     types, so "every category present" is a compile-time guarantee rather
//     than a map lookup that can miss a key.
//   - State is immutable from the caller's perspective: With returns a copy
//     with one category changed, never mutates the receiver.
//
// When to use:
//
//   - As the shared currency between scorer, neighborhood, astar, greedy,
//     annealing, validator and router: every engine accepts and returns
//     alloc.State, never a bare map[string]int.
package alloc
