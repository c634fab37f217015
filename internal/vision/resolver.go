package vision

import (
	"cube-netter/internal/logger"
)

// Resolver turns five face ColorMaps into a Layout by chaining side faces on
// shared border colors. It works purely on the maps and the (already
// resized) face widths; no pixels are read.
type Resolver struct {
	log logger.Logger
}

func NewResolver(log logger.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve partitions the faces into one top face and four side faces,
// orders the side faces left to right, and finds the horizontal offset at
// which the top face sits over the strip. widths[i] is the resized width of
// face i. When several faces could extend the chain, the first in input
// order wins.
func (r *Resolver) Resolve(maps []ColorMap, widths []int) (*Layout, error) {
	var sides []int
	var tops []int
	for i, m := range maps {
		if m.IsTop() {
			tops = append(tops, i)
		} else {
			sides = append(sides, i)
		}
	}

	if len(tops) != 1 || len(sides) == 0 {
		return nil, &RoleError{TopCount: len(tops), TopIndices: tops}
	}
	topIndex := tops[0]

	topBottom, ok := maps[topIndex].ColorAt(BorderBottom)
	if !ok {
		return nil, &PlacementError{Reason: "top face has no bottom-border color"}
	}

	order := []int{sides[0]}
	remaining := append([]int(nil), sides[1:]...)

	connector, ok := maps[sides[0]].ColorAt(BorderRight)
	if !ok {
		return nil, &ChainError{Position: 0}
	}

	offset := -1
	if c, ok := maps[sides[0]].ColorAt(BorderTop); ok && c == topBottom {
		offset = 0
	}
	consumed := widths[sides[0]]

	for len(remaining) > 0 {
		matched := -1
		for j, candidate := range remaining {
			if left, ok := maps[candidate].ColorAt(BorderLeft); ok && left == connector {
				matched = j
				break
			}
		}
		if matched == -1 {
			return nil, &ChainError{Connector: connector, Position: len(order)}
		}

		face := remaining[matched]
		remaining = append(remaining[:matched], remaining[matched+1:]...)
		order = append(order, face)

		if c, ok := maps[face].ColorAt(BorderTop); ok && c == topBottom && offset < 0 {
			offset = consumed
		}
		consumed += widths[face]

		connector, ok = maps[face].ColorAt(BorderRight)
		if !ok && len(remaining) > 0 {
			return nil, &ChainError{Position: len(order)}
		}
	}

	if offset < 0 {
		return nil, &PlacementError{
			Reason:   "no side face's top-border color matches the top face's bottom-border color",
			TopColor: topBottom,
		}
	}

	r.log.Info("AdjacencyResolver", "layout resolved", map[string]interface{}{
		"side_order": order,
		"top_index":  topIndex,
		"top_offset": offset,
	})

	return &Layout{
		SideOrder: order,
		TopIndex:  topIndex,
		TopOffset: offset,
	}, nil
}
