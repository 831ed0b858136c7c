package checklist

// Move returns a new slice with the element at from relocated to index to.
// Every other element keeps its relative order and xs is left untouched.
// Out-of-range indexes yield an unchanged copy.
func Move[T any](xs []T, from, to int) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	if from == to || from < 0 || to < 0 || from >= len(xs) || to >= len(xs) {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// ReorderSections moves the section movedID to targetIndex. A request that
// would not move anything returns p unchanged.
func ReorderSections(p Project, movedID string, targetIndex int) Project {
	from := p.SectionIndex(movedID)
	if from < 0 || from == targetIndex || targetIndex < 0 || targetIndex >= len(p.Sections) {
		return p
	}
	p.Sections = Move(p.Sections, from, targetIndex)
	return p
}
