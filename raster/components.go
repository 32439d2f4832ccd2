package raster

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a pixel coordinate.
type Point struct {
	Row, Col int
}

// neighborOffsets returns (dRow, dCol) pairs for the given connectivity.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Components finds all contiguous regions of foreground (non-zero) pixels.
// Regions are seeded in row-major order; pixels inside a region are listed in
// breadth-first order from the seed.
//
// Time:   O(n·d·(R + chain length)) for n foreground pixels, d = 4 or 8.
// Memory: O(n) for the visited set and output.
func (im *Image[T]) Components(conn Connectivity) [][]Point {
	seen := make(map[Point]bool, im.Count())
	offsets := neighborOffsets(conn)
	var comps [][]Point

	im.grid.Each(func(r, c int, _ T) bool {
		p0 := Point{Row: r, Col: c}
		if seen[p0] {
			return true
		}
		// BFS to collect the region
		queue := []Point{p0}
		seen[p0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := Point{Row: u.Row + d[0], Col: u.Col + d[1]}
				if seen[v] || !im.grid.Has(v.Row, v.Col) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
		return true
	})

	return comps
}
