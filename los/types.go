package los

// cellOf returns the grid cell containing the fractional point (x,y),
// treating each cell (cx,cy) as occupying [cx,cx+1) x [cy,cy+1).
func cellOf(x, y float64) (cx, cy int) {
	return int(floor(x)), int(floor(y))
}

func floor(v float64) float64 {
	i := float64(int(v))
	if v < 0 && i != v {
		return i - 1
	}

	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
