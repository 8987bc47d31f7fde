package maze

// CellType classifies a single grid cell as wall or carved passage.
type CellType uint8

const (
	// Wall is an uncarved grid cell.
	Wall CellType = iota
	// Path is a carved, walkable grid cell.
	Path
)

// Coordinate addresses a grid cell by column and row. It is comparable and
// used as the map/set key for cells throughout generation and search.
type Coordinate struct {
	X int
	Y int
}

// Add returns the coordinate shifted by the given delta.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}
