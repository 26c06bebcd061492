package builder

import "fmt"

// DanglingRootError is returned by Build when root does not name the
// last clause appended to the builder, i.e. the caller built
// expressions after root and never used them in computing it.
type DanglingRootError struct {
	Root, Last int
}

func (e *DanglingRootError) Error() string {
	return fmt.Sprintf("builder: root register %d is not the last appended clause (%d)", e.Root, e.Last)
}
