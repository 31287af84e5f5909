package tree

import (
	"fmt"

	"github.com/elastide/lsconf/debug"
)

// ShapeError reports a tree that does not fit any node shape: an
// unknown tag, a wrong key set, a wrong payload type, or an arm chain
// out of order.
type ShapeError struct {
	Tag    string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Tag == "" {
		return "tree: " + e.Reason
	}
	return fmt.Sprintf("tree: %s: %s", e.Tag, e.Reason)
}

func shapeErr(tag, format string, args ...any) *ShapeError {
	e := &ShapeError{Tag: tag, Reason: fmt.Sprintf(format, args...)}
	if debug.Tree() {
		debug.Logf("lsconf/tree: %s\n", e.Error())
	}
	return e
}
