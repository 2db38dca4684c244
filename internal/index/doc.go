// Package index builds, loads and queries the character name index.
//
// The index is a finite state transducer (FST) mapping every character
// name to its code point. Keys are stored in byte-wise ascending order,
// so traversal yields associations sorted by name, and a compiled query
// automaton is intersected with the transducer instead of scanning every
// name.
//
// The pipeline has three stages:
//
//   - SortDedup orders a raw association table and drops duplicate names
//     (first occurrence wins).
//   - Build streams a sorted table into the serialized artifact. Equal
//     tables always yield byte-identical artifacts.
//   - Load maps an artifact into a read-only Index without copying it.
//
// An Index is immutable and safe for concurrent use.
package index
