// Package hierarchy turns a flat list of partners into a validated referral
// tree.
//
// Build makes a single pass over the partners in input order and fails on the
// first structural problem it meets: a second root or a reference to a parent
// id that is not in the input. Only after the pass does it check that a root
// exists and that the parent links contain no cycle. A tree returned by Build
// is never modified afterwards.
//
// Traversals are iterative, so hierarchies of any depth are handled without
// growing the goroutine stack.
package hierarchy
