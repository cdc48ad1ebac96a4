package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellStatus is what a tile looks like to the player. Values 0-8 are open
// tiles with their surrounding mine count; the rest are markers.
type CellStatus int8

const (
	Unknown CellStatus = -2
	Flagged CellStatus = -1
	// post-game-over only:
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
)

func (s CellStatus) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// GridView is a row-major snapshot of cell statuses, ready for rendering or
// serialization.
type GridView []CellStatus

func (v GridView) ToString(width int) string {
	var b strings.Builder
	for y := range len(v) / width {
		for x := range width {
			i := y*width + x
			if i >= len(v) {
				break
			}
			fmt.Fprint(&b, v[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// View projects the board into per-cell statuses. While the round is live
// only player knowledge shows; once it ends the remaining mines and wrong
// flags are exposed as well.
func (g *Game) View() GridView {
	view := make(GridView, len(g.board.tiles))
	over := g.phase == Won || g.phase == Lost
	for i, t := range g.board.tiles {
		switch {
		case t.revealed && t.mine:
			view[i] = ExplodedMine
		case t.revealed:
			view[i] = CellStatus(t.adjacent)
		case t.flagged && over && !t.mine:
			view[i] = WrongFlag
		case t.flagged:
			view[i] = Flagged
		case over && t.mine:
			view[i] = UnflaggedMine
		default:
			view[i] = Unknown
		}
	}
	return view
}
