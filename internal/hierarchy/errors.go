package hierarchy

import (
	"errors"
	"fmt"
)

// ErrInvalidHierarchy is the base of every error returned by Build.
var ErrInvalidHierarchy = errors.New("invalid partner hierarchy")

var (
	ErrMultipleRoots  = fmt.Errorf("%w: multiple root partners", ErrInvalidHierarchy)
	ErrRootNotFound   = fmt.Errorf("%w: root partner not found", ErrInvalidHierarchy)
	ErrParentNotFound = fmt.Errorf("%w: parent partner not found", ErrInvalidHierarchy)
	ErrCycleDetected  = fmt.Errorf("%w: cycle detected", ErrInvalidHierarchy)
)
