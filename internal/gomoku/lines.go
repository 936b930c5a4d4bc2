package gomoku

// Row returns every point of row y, left to right.
func (that *Board) Row(y int) []Point {
	line := make([]Point, 0, that.width)
	for x := 0; x < that.width; x++ {
		line = append(line, Point{X: x, Y: y})
	}
	return line
}

// Column returns every point of column x, top to bottom.
func (that *Board) Column(x int) []Point {
	line := make([]Point, 0, that.height)
	for y := 0; y < that.height; y++ {
		line = append(line, Point{X: x, Y: y})
	}
	return line
}

// Diagonal returns the top-left to bottom-right diagonal through pt, edge to edge.
func (that *Board) Diagonal(pt Point) []Point {
	begin := Point{
		X: max(0, pt.X-pt.Y),
		Y: max(0, pt.Y-pt.X),
	}
	length := min(that.width-begin.X, that.height-begin.Y)

	line := make([]Point, 0, length)
	for offset := 0; offset < length; offset++ {
		line = append(line, Point{X: begin.X + offset, Y: begin.Y + offset})
	}
	return line
}

// AntiDiagonal returns the bottom-left to top-right diagonal through pt, edge to edge.
func (that *Board) AntiDiagonal(pt Point) []Point {
	// steps back towards the left or bottom edge, whichever comes first
	back := min(pt.X, that.height-1-pt.Y)
	begin := Point{
		X: pt.X - back,
		Y: pt.Y + back,
	}
	length := min(that.width-begin.X, begin.Y+1)

	line := make([]Point, 0, length)
	for offset := 0; offset < length; offset++ {
		line = append(line, Point{X: begin.X + offset, Y: begin.Y - offset})
	}
	return line
}

// Lines returns the row, column, diagonal and anti-diagonal through pt, in that order.
func (that *Board) Lines(pt Point) [][]Point {
	return [][]Point{
		that.Row(pt.Y),
		that.Column(pt.X),
		that.Diagonal(pt),
		that.AntiDiagonal(pt),
	}
}
