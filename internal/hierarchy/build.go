package hierarchy

import (
	"fmt"

	"commission-engine/internal/model"
)

// Build validates partners and returns their hierarchy.
//
// It fails with ErrMultipleRoots or ErrParentNotFound on the first offending
// partner in input order, then with ErrRootNotFound when no partner has a nil
// parent and with ErrCycleDetected when the parent links loop. Input is never
// repaired.
func Build(partners []model.Partner) (*Tree, error) {
	ids := make(map[int]struct{}, len(partners))
	for _, p := range partners {
		ids[p.ID] = struct{}{}
	}

	children := make(map[int][]int)
	root, hasRoot := 0, false

	for _, p := range partners {
		if p.IsRoot() {
			if hasRoot {
				return nil, fmt.Errorf("%w: partner %d (root is already %d)", ErrMultipleRoots, p.ID, root)
			}
			root, hasRoot = p.ID, true
			continue
		}

		parentID := *p.ParentID
		if _, ok := ids[parentID]; !ok {
			return nil, fmt.Errorf("%w: partner %d references parent %d", ErrParentNotFound, p.ID, parentID)
		}
		children[parentID] = append(children[parentID], p.ID)
	}

	if !hasRoot {
		return nil, ErrRootNotFound
	}

	if node, found := findCycle(children); found {
		return nil, fmt.Errorf("%w: partner %d is its own ancestor", ErrCycleDetected, node)
	}

	return &Tree{Root: root, Children: children}, nil
}
