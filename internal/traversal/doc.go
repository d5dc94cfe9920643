// Package traversal implements the pure path- and flow-computation
// algorithms of the simulation engine: BFS, Dijkstra, bounded DFS,
// multicast sweep, ECMP enumeration, bandwidth-constrained search,
// link-state next-hop tables, reverse-path-forwarding checks, and the
// two flow planners (multipath and multi-commodity).
//
// None of these functions hold a reference to the Graph Store. Each
// takes an Oracle — four borrowed lookup functions (neighbors, delay,
// bandwidth, loss) — so the kernel stays decoupled from the store's
// locking and can be tested against fixtures that are plain maps.
package traversal
