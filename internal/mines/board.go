package mines

import "math/rand/v2"

// safeZoneSize is the worst-case size of the first-click safe zone: the
// clicked cell plus its eight neighbors.
const safeZoneSize = 9

type board struct {
	width, height int
	mineCount     int
	tiles         []Tile
	concealed     int // tiles not yet revealed by a cascade
}

func newBoard(width, height, mineCount int) (*board, error) {
	if width <= 0 || height <= 0 || mineCount < 0 ||
		mineCount > width*height-safeZoneSize {
		return nil, &InvalidParamsError{width, height, mineCount}
	}
	return &board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		tiles:     make([]Tile, width*height),
		concealed: width * height,
	}, nil
}

func (b *board) inBounds(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

func (b *board) tile(p Point) *Tile {
	return &b.tiles[p.Index(b.width)]
}

// placeMines scatters mineCount mines across the grid, skipping safe and its
// in-bounds neighbors so the first reveal always opens on a mine-free
// neighborhood. Runs exactly once per game, on the first reveal. The
// rejection sampling terminates because newBoard guarantees enough room
// outside the safe zone.
func (b *board) placeMines(safe Point, r *rand.Rand) {
	safeIdxs := map[int]bool{safe.Index(b.width): true}
	for _, off := range adjacentOffsets {
		if p := safe.Add(off); b.inBounds(p) {
			safeIdxs[p.Index(b.width)] = true
		}
	}

	placed := 0
	for placed < b.mineCount {
		i := r.IntN(len(b.tiles))
		if b.tiles[i].mine || safeIdxs[i] {
			continue
		}
		b.tiles[i].mine = true
		placed++
	}
}

// computeAdjacency stores the surrounding-mine count on every non-mine tile.
// Runs once, right after placeMines.
func (b *board) computeAdjacency() {
	for i := range b.tiles {
		if b.tiles[i].mine {
			continue
		}
		p := PointFromIndex(i, b.width)
		n := 0
		for _, off := range adjacentOffsets {
			if adj := p.Add(off); b.inBounds(adj) && b.tile(adj).mine {
				n++
			}
		}
		b.tiles[i].adjacent = n
	}
}

// revealCascade floods "revealed" outward from start across tiles with no
// adjacent mines. Plain work-queue BFS; the revealed/flagged skip runs at
// dequeue time, so duplicate enqueues are harmless and flagged tiles block
// the flood. Callers never pass a mined point here.
func (b *board) revealCascade(start Point) {
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		t := b.tile(p)
		if t.revealed || t.flagged {
			continue
		}
		t.revealed = true
		b.concealed--

		if t.adjacent == 0 {
			for _, off := range adjacentOffsets {
				if adj := p.Add(off); b.inBounds(adj) {
					queue = append(queue, adj)
				}
			}
		}
	}
}
