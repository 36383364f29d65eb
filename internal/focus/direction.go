package focus

// Direction is a relative move inside the grid.
type Direction int

const (
	Current Direction = iota
	NextX
	PreviousX
	NextY
	PreviousY
)

var directionNames = map[Direction]string{
	Current:   "current",
	NextX:     "nextX",
	PreviousX: "previousX",
	NextY:     "nextY",
	PreviousY: "previousY",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}
