package level

// computeFaces sets the visible faces of each cube.
// The top is always drawn. A side is drawn at the border of the grid,
// or when the neighbour is a hole or lower. The bottom is drawn above height 1.
func computeFaces(l *Level) {
	for z := 0; z < l.Rows; z++ {
		for x := 0; x < l.Cols; x++ {
			cube := &l.Cubes[z][x]
			cube.Faces = FaceTop

			if l.sideVisible(cube, x-1, z) {
				cube.Faces |= FaceLeft
			}
			if l.sideVisible(cube, x+1, z) {
				cube.Faces |= FaceRight
			}
			if l.sideVisible(cube, x, z-1) {
				cube.Faces |= FaceFar
			}
			if l.sideVisible(cube, x, z+1) {
				cube.Faces |= FaceNear
			}
			if cube.Height() > 1 {
				cube.Faces |= FaceBottom
			}
		}
	}
}

func (l *Level) sideVisible(cube *Cube, x, z int) bool {
	neighbour, ok := l.CubeAt(x, z)
	if !ok {
		return true
	}
	return !neighbour.Solid() || cube.Height() > neighbour.Height()
}
