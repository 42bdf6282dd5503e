package raster

// edge is a non-horizontal line segment prepared for scanline traversal,
// stored with y0 < y1 and the original winding direction.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // +1 if the segment pointed downward, -1 if upward
}

// xAt returns the x coordinate of the edge at scanline y.
func (e *edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// buildEdges converts a point loop into scanline edges, closing the polygon
// and dropping horizontal segments (they never cross a scanline).
func buildEdges(points []Point) []edge {
	edges := make([]edge, 0, len(points))
	for i := 0; i < len(points); i++ {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		if p0.Y == p1.Y {
			continue
		}

		dir := 1
		if p0.Y > p1.Y {
			dir = -1
			p0, p1 = p1, p0
		}
		edges = append(edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir})
	}
	return edges
}
