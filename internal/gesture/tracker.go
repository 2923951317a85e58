package gesture

// DefaultSwipeThreshold is the horizontal travel, in cells, that dismisses a row.
const DefaultSwipeThreshold = 8

// Tracker follows one press-move-release sequence over a list of rows.
//
// Vertical travel repositions the pressed row one slot at a time, each
// time its leading edge crosses a neighbor's midpoint. Horizontal travel
// past the swipe threshold dismisses it. The axis is locked by the first
// motion that leaves the starting cell.
type Tracker struct {
	RowHeight      int
	SwipeThreshold int

	active  bool
	axis    axis
	count   int
	origin  int
	current int
	startX  int
	startY  int
}

type axis int

const (
	axisNone axis = iota
	axisVertical
	axisHorizontal
)

// Active reports whether a press is being tracked.
func (t *Tracker) Active() bool { return t.active }

// Current is the visual position of the pressed row.
func (t *Tracker) Current() int { return t.current }

// Press starts tracking row index of a list holding count rows.
func (t *Tracker) Press(index, count, x, y int) {
	t.active = index >= 0 && index < count
	t.axis = axisNone
	t.count = count
	t.origin = index
	t.current = index
	t.startX = x
	t.startY = y
}

// Motion feeds a pointer position and forwards resulting gestures to src.
func (t *Tracker) Motion(x, y int, src Source) {
	if !t.active {
		return
	}
	dx, dy := x-t.startX, y-t.startY
	if t.axis == axisNone {
		switch {
		case abs(dx) > abs(dy) && dx != 0:
			t.axis = axisHorizontal
		case dy != 0:
			t.axis = axisVertical
		default:
			return
		}
	}

	switch t.axis {
	case axisHorizontal:
		if abs(dx) < t.swipeThreshold() {
			return
		}
		dir := Right
		if dx < 0 {
			dir = Left
		}
		t.active = false
		src.OnDismiss(t.current, dir)
	case axisVertical:
		target := t.clamp(t.origin + Steps(dy, t.rowHeight()))
		for t.current != target {
			next := t.current + 1
			if target < t.current {
				next = t.current - 1
			}
			src.OnReposition(t.current, next)
			t.current = next
		}
	}
}

// Release ends the gesture.
func (t *Tracker) Release() {
	t.active = false
	t.axis = axisNone
}

// Steps converts a vertical offset into slots travelled. A row dragged by
// at least half its height has reached its neighbor's midpoint.
func Steps(offset, rowHeight int) int {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	half := rowHeight / 2
	if offset >= 0 {
		return (offset + half) / rowHeight
	}
	return -((-offset + half) / rowHeight)
}

func (t *Tracker) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > t.count-1 {
		return t.count - 1
	}
	return i
}

func (t *Tracker) rowHeight() int {
	if t.RowHeight <= 0 {
		return 1
	}
	return t.RowHeight
}

func (t *Tracker) swipeThreshold() int {
	if t.SwipeThreshold <= 0 {
		return DefaultSwipeThreshold
	}
	return t.SwipeThreshold
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
