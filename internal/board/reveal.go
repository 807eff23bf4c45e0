package board

// RevealFloodFill reveals (x, y) and, when it has no adjacent mines, spreads
// to its neighbours under the same rule. Tiles that are already revealed,
// flagged or mined stop the spread, so the result is the connected region of
// zero tiles plus the numbered tiles bordering it. It returns the number of
// tiles newly revealed.
//
// The traversal uses an explicit stack with IsRevealed as the visited mark,
// so it terminates on any grid without growing the call stack.
func (b *Board) RevealFloodFill(x, y int) int {
	revealed := 0
	stack := []Point{{X: x, Y: y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := b.Tile(p.X, p.Y)
		if t.IsRevealed || t.IsMine || t.IsFlagged {
			continue
		}

		t.IsRevealed = true
		revealed++

		if t.AdjacentMines != 0 {
			continue
		}
		for _, n := range b.Neighbors(p.X, p.Y) {
			if !n.IsRevealed {
				stack = append(stack, n.Point())
			}
		}
	}

	return revealed
}

// RevealAll reveals every tile, mines included.
func (b *Board) RevealAll() {
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			b.Tiles[y][x].IsRevealed = true
		}
	}
}

// CheckWin returns true when every non-mine tile is revealed. Mines do not
// need to be flagged.
func (b *Board) CheckWin() bool {
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			t := &b.Tiles[y][x]
			if !t.IsMine && !t.IsRevealed {
				return false
			}
		}
	}
	return true
}
