package model

const (
	aliveMarker = 'X'
	deadMarker  = '.'
)

// Cell is a single grid position. Its coordinates are fixed once the grid creates it.
type Cell struct {
	x     int
	y     int
	alive bool
}

// X returns the column of the cell
func (c *Cell) X() int {
	return c.x
}

// Y returns the row of the cell
func (c *Cell) Y() int {
	return c.y
}

func (c *Cell) IsAlive() bool {
	return c.alive
}

func (c *Cell) IsDead() bool {
	return !c.IsAlive()
}

// SetAlive marks the cell alive
func (c *Cell) SetAlive() {
	c.alive = true
}

// SetDead marks the cell dead
func (c *Cell) SetDead() {
	c.alive = false
}

// Render returns the seed character for the cell: 'X' when alive, '.' when dead
func (c *Cell) Render() rune {
	if c.alive {
		return aliveMarker
	}
	return deadMarker
}

func (c *Cell) String() string {
	return string(c.Render())
}
