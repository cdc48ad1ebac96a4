package mines

import "fmt"

// InvalidParamsError reports board parameters that cannot produce a playable
// game: non-positive dimensions, or too many mines to leave room for the
// first-click safe zone.
type InvalidParamsError struct {
	Width, Height, MineCount int
}

func (e *InvalidParamsError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	default:
		return fmt.Sprintf(
			"%d mines do not fit on a %dx%d board with a safe first click",
			e.MineCount, e.Width, e.Height,
		)
	}
}

// OutOfBoundsError reports a move aimed outside the board.
type OutOfBoundsError struct {
	Point         Point
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"point %s is outside the %dx%d board", e.Point, e.Width, e.Height,
	)
}
