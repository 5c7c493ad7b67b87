package collide

import (
	"fmt"
	"strings"

	"github.com/gogpu/collide/internal/f32x4"
)

// EdgeRule selects which exact edge touches count as collision in the
// rectangle tests. Each flag names an edge of the second rectangle of a
// test: LeftIn means "A's right edge exactly touching B's left edge counts
// as overlap", and so on. Because the flags are defined relative to B, a
// rule other than NoEdges or AllEdges makes the rectangle overlap test
// asymmetric in its arguments.
type EdgeRule uint8

const (
	// LeftIn counts A.Right == B.Left as overlap.
	LeftIn EdgeRule = 1 << iota
	// TopIn counts A.Bottom == B.Top as overlap.
	TopIn
	// RightIn counts A.Left == B.Right as overlap.
	RightIn
	// BottomIn counts A.Top == B.Bottom as overlap.
	BottomIn
)

const (
	// NoEdges makes every exact edge touch miss.
	NoEdges EdgeRule = 0
	// AllEdges makes every exact edge touch collide. This is the default
	// closed-interval behavior of Rect.Overlaps.
	AllEdges = LeftIn | TopIn | RightIn | BottomIn
)

// mask converts the rule into a lane mask matching the rectangle layout.
// The flag bits were chosen to line up with the layout lanes
// (left, top, right, bottom), so this is a plain truncation.
func (r EdgeRule) mask() f32x4.Mask {
	return f32x4.Mask(r) & f32x4.MaskAll
}

// String returns the rule as a comma-separated list of edge names.
func (r EdgeRule) String() string {
	switch r & AllEdges {
	case NoEdges:
		return "none"
	case AllEdges:
		return "all"
	}
	var names []string
	for _, e := range [...]struct {
		flag EdgeRule
		name string
	}{{LeftIn, "left"}, {TopIn, "top"}, {RightIn, "right"}, {BottomIn, "bottom"}} {
		if r&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseEdgeRule parses a rule in the format produced by String: "none",
// "all", or a comma-separated subset of "left", "top", "right", "bottom".
func ParseEdgeRule(s string) (EdgeRule, error) {
	switch strings.TrimSpace(s) {
	case "", "all":
		return AllEdges, nil
	case "none":
		return NoEdges, nil
	}
	var rule EdgeRule
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "left":
			rule |= LeftIn
		case "top":
			rule |= TopIn
		case "right":
			rule |= RightIn
		case "bottom":
			rule |= BottomIn
		default:
			return 0, fmt.Errorf("collide: unknown edge %q in rule %q", part, s)
		}
	}
	return rule, nil
}
