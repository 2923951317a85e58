// Package gesture turns raw pointer motion into list gestures.
package gesture

// Direction of a swipe or drag axis.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether d may dismiss a row.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Source is what a gesture recognizer drives.
type Source interface {
	// OnReposition moves the row at visual position from to position to.
	OnReposition(from, to int)
	// OnDismiss swipes the row at position at away in direction dir.
	OnDismiss(at int, dir Direction)
}
