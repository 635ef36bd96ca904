package components

// Quadrant is one quarter of the screen, split at the midpoints.
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

var quadrantNames = [...]string{"top_left", "top_right", "bottom_left", "bottom_right"}

func (q Quadrant) String() string {
	if int(q) < len(quadrantNames) {
		return quadrantNames[q]
	}
	return "unknown"
}

// QuadrantOf returns the quadrant containing (x, y) on a w by h screen.
// Points on a midpoint belong to the right or bottom half.
func QuadrantOf(x, y, w, h float64) Quadrant {
	right := x >= w/2
	bottom := y >= h/2
	switch {
	case !right && !bottom:
		return TopLeft
	case right && !bottom:
		return TopRight
	case !right && bottom:
		return BottomLeft
	default:
		return BottomRight
	}
}

// Opposite returns the diagonally opposite quadrant.
func (q Quadrant) Opposite() Quadrant {
	return q ^ 0b11
}

// Adjacent returns the two quadrants sharing an edge with q.
func (q Quadrant) Adjacent() [2]Quadrant {
	return [2]Quadrant{q ^ 0b01, q ^ 0b10}
}

// Bounds returns the rectangle covered by q on a w by h screen.
func (q Quadrant) Bounds(w, h float64) (minX, minY, maxX, maxY float64) {
	if q&0b01 != 0 {
		minX, maxX = w/2, w
	} else {
		minX, maxX = 0, w/2
	}
	if q&0b10 != 0 {
		minY, maxY = h/2, h
	} else {
		minY, maxY = 0, h/2
	}
	return minX, minY, maxX, maxY
}
