package hierarchy

// Tree is a validated partner hierarchy. Children maps a parent id to its
// child ids in input order; ids without children have no key.
type Tree struct {
	Root     int
	Children map[int][]int
}

// ChildrenOf returns the direct children of id, nil for a leaf.
func (t *Tree) ChildrenOf(id int) []int {
	return t.Children[id]
}

// frame is one level of an explicit depth-first stack: the node and the index
// of the next child to descend into.
type frame struct {
	node int
	next int
}

// PostOrder calls visit for every node reachable from the root, each node
// after all of its children. Children are visited in input order.
func (t *Tree) PostOrder(visit func(id int)) {
	stack := []frame{{node: t.Root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := t.Children[top.node]
		if top.next < len(kids) {
			child := kids[top.next]
			top.next++
			stack = append(stack, frame{node: child})
			continue
		}
		visit(top.node)
		stack = stack[:len(stack)-1]
	}
}
