package vision

import "fmt"

// RoleError reports that the five faces did not split into exactly one top
// face and four side faces.
type RoleError struct {
	TopCount   int
	TopIndices []int
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("expected exactly one top face, found %d (indices %v)", e.TopCount, e.TopIndices)
}

// ChainError reports that the side-face chain could not be extended: no
// remaining face's left-border color matched the connector color.
type ChainError struct {
	Connector string
	Position  int
}

func (e *ChainError) Error() string {
	if e.Connector == "" {
		return fmt.Sprintf("side-face chain broken at position %d: no connector color on current face", e.Position)
	}
	return fmt.Sprintf("side-face chain broken at position %d: no side face with left-border color %q", e.Position, e.Connector)
}

// PlacementError reports that the top face could not be placed over the side
// strip, either because no side face's top color matched the top face's
// bottom color, or because the composite would fall outside the canvas.
type PlacementError struct {
	Reason   string
	TopColor string
	Offset   int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("top face placement failed: %s", e.Reason)
}
