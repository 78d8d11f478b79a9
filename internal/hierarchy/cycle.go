package hierarchy

import (
	"maps"
	"slices"
)

// DetectCycle reports whether the parent→children mapping contains a directed
// cycle. Every key is used as a starting point, so cycles that are not
// reachable from the root are found too.
func DetectCycle(children map[int][]int) bool {
	_, found := findCycle(children)
	return found
}

// findCycle runs a three-colour depth-first search and returns the node that
// closes the first back edge it meets. Start nodes are taken in ascending
// order so the reported node is stable.
func findCycle(children map[int][]int) (int, bool) {
	finished := make(map[int]bool, len(children))
	onPath := make(map[int]bool)
	var stack []frame

	for _, start := range slices.Sorted(maps.Keys(children)) {
		if finished[start] {
			continue
		}
		stack = append(stack[:0], frame{node: start})
		onPath[start] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			kids := children[top.node]
			if top.next == len(kids) {
				delete(onPath, top.node)
				finished[top.node] = true
				stack = stack[:len(stack)-1]
				continue
			}

			child := kids[top.next]
			top.next++
			if onPath[child] {
				return child, true
			}
			if finished[child] {
				continue
			}
			onPath[child] = true
			stack = append(stack, frame{node: child})
		}
	}

	return 0, false
}
