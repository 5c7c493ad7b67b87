package collide

// CullGroup filters group in place down to the rectangles overlapping a
// (closed-interval semantics, as in Rect.Overlaps) and reports whether any
// survived. It returns the retained prefix of the input slice.
//
// This is a reference linear scan for small groups, not a broad phase; a
// spatial index should front it once group sizes grow.
func CullGroup(a Rect, group []Rect) ([]Rect, bool) {
	kept := group[:0]
	for _, r := range group {
		if a.Overlaps(r) {
			kept = append(kept, r)
		}
	}
	return kept, len(kept) > 0
}
