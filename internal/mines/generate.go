package mines

func (g *Game) targetMineCount() int {
	cells := g.width * g.height
	if g.layout != nil {
		seen := make(map[Point]struct{}, len(g.layout))
		for _, p := range g.layout {
			if g.inBounds(p.X, p.Y) {
				seen[p] = struct{}{}
			}
		}
		return len(seen)
	}
	n := g.fixedCount
	if n < 0 {
		n = int(float64(cells)*g.density + 1e-9)
	}
	return max(0, min(n, cells-1))
}

// exclusionCenter shifts a seed coordinate inward so that the 3x3 zone
// around it stays inside a dimension of the given size.
func exclusionCenter(s, size int) int {
	if size < 3 {
		return s
	}
	return max(1, min(size-2, s))
}

// placeMines lays mineCount mines outside the exclusion zone around seed.
func (g *Game) placeMines(seed int) {
	if g.layout != nil {
		for _, p := range g.layout {
			if g.inBounds(p.X, p.Y) {
				g.tiles[g.index(p.X, p.Y)].Value = Mine
			}
		}
		return
	}

	cx := exclusionCenter(seed%g.width, g.width)
	cy := exclusionCenter(seed/g.width, g.height)

	/*
	 * Write down the list of possible mine locations, then pick n off
	 * the list at random.
	 */
	candidates := make([]int, 0, len(g.tiles))
	for i, t := range g.tiles {
		if absDiff(t.X, cx) > 1 || absDiff(t.Y, cy) > 1 {
			candidates = append(candidates, i)
		}
	}

	if g.mineCount > len(candidates) {
		Log.Warn("too many mines for the board, clamping",
			"want", g.mineCount, "room", len(candidates),
			"width", g.width, "height", g.height,
		)
		g.mineCount = len(candidates)
	}

	k := len(candidates)
	for range g.mineCount {
		j := g.rnd.IntN(k)
		g.tiles[candidates[j]].Value = Mine
		k--
		candidates[j] = candidates[k]
	}
}

func (g *Game) placeNumbers() {
	for i := range g.tiles {
		if g.tiles[i].Value.IsMine() {
			continue
		}
		n := 0
		for _, j := range g.neighbors(i) {
			if g.tiles[j].Value.IsMine() {
				n++
			}
		}
		g.tiles[i].Value = Empty(n)
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
