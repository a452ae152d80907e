package rules

/*
NextState applies Conway's Game of Life rules to a single cell.

A live cell survives with 2 or 3 live neighbours and dies otherwise (under-population
below 2, overcrowding above 3). A dead cell comes alive with exactly 3 live neighbours.
*/
func NextState(alive bool, liveNeighbours int) bool {
	if alive {
		return liveNeighbours == 2 || liveNeighbours == 3
	}
	return liveNeighbours == 3
}
