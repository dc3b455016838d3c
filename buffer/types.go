package buffer

// Position points into a Document by grapheme column X and row Y.
//
// Y == Document.Len() is valid and addresses the row that would be appended.
type Position struct {
	X int
	Y int
}

// SearchDirection selects which way Find scans.
type SearchDirection uint8

const (
	Forward SearchDirection = iota
	Backward
)

func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
