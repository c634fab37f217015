package vision

import "sort"

// BorderPosition identifies the edge of a face image nearest a detected
// sticker's centroid.
type BorderPosition int

const (
	BorderTop BorderPosition = iota
	BorderRight
	BorderBottom
	BorderLeft
)

func (p BorderPosition) String() string {
	switch p {
	case BorderTop:
		return "top"
	case BorderRight:
		return "right"
	case BorderBottom:
		return "bottom"
	case BorderLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ColorMap records, for one photographed face, which border position each
// detected sticker color occupies.
type ColorMap map[string]BorderPosition

// IsTop reports whether the face shows stickers on all four borders, which
// marks it as the top face of the cube.
func (m ColorMap) IsTop() bool {
	return len(m) == 4
}

// ColorAt returns the color assigned to the given border position. When two
// colors share a position the lexicographically first wins, so resolution
// stays deterministic.
func (m ColorMap) ColorAt(pos BorderPosition) (string, bool) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if m[name] == pos {
			return name, true
		}
	}
	return "", false
}

// Layout is the positional result of adjacency resolution: which faces form
// the side strip, in what left-to-right order, and where the top face sits.
// No pixels are touched to produce it.
type Layout struct {
	SideOrder []int
	TopIndex  int
	TopOffset int
}
