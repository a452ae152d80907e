package model

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

var (
	// ErrInvalidSeed is returned when a seed is empty or its rows differ in length
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrOutOfBounds is returned when coordinates fall outside the grid
	ErrOutOfBounds = errors.New("out of bounds")
)

// Moore neighbourhood offsets, clockwise from the north-west
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0},
	{1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// Grid is a fixed-size board of cells that advances one generation per Tick
type Grid struct {
	width  int
	height int
	cells  [][]Cell
	next   [][]bool // next generation, filled before any cell changes
}

// NewGrid builds a grid from a rectangular character matrix. A '.' is a dead cell,
// any other character a live one.
func NewGrid(seed [][]rune) (*Grid, error) {
	if len(seed) == 0 || len(seed[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidSeed, "[NewGrid] seed is empty")
	}

	var (
		height = len(seed)
		width  = len(seed[0])
		cells  = make([][]Cell, height)
		next   = make([][]bool, height)
	)
	for y, row := range seed {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidSeed, "[NewGrid] row %d has %d cells, want %d", y, len(row), width)
		}
		cells[y] = make([]Cell, width)
		next[y] = make([]bool, width)
		for x, ch := range row {
			cells[y][x] = Cell{x: x, y: y, alive: ch != deadMarker}
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		next:   next,
	}, nil
}

// ParseGrid builds a grid from newline separated rows of equal length.
// A single trailing newline is ignored.
func ParseGrid(seed string) (*Grid, error) {
	seed = strings.TrimSuffix(seed, "\n")
	if seed == "" {
		return nil, errors.Wrap(ErrInvalidSeed, "[ParseGrid] seed is empty")
	}

	lines := strings.Split(seed, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
		if len(rows[i]) == 0 {
			return nil, errors.Wrapf(ErrInvalidSeed, "[ParseGrid] row %d is empty", i)
		}
	}
	return NewGrid(rows)
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the cell at column x, row y
func (g *Grid) CellAt(x, y int) (*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[CellAt] (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return &g.cells[y][x], nil
}

// Neighbours returns the in-bounds cells of the Moore neighbourhood around (x, y).
// Interior cells have 8, edge cells 5 and corner cells 3.
func (g *Grid) Neighbours(x, y int) ([]*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[Neighbours] (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}

	neighbours := make([]*Cell, 0, len(neighbourOffsets))
	g.eachNeighbour(x, y, func(c *Cell) {
		neighbours = append(neighbours, c)
	})
	return neighbours, nil
}

func (g *Grid) eachNeighbour(x, y int, fn func(c *Cell)) {
	for _, offset := range neighbourOffsets {
		nx, ny := x+offset[0], y+offset[1]
		if g.inBounds(nx, ny) {
			fn(&g.cells[ny][nx])
		}
	}
}

func (g *Grid) liveNeighbours(x, y int) (count int) {
	g.eachNeighbour(x, y, func(c *Cell) {
		if c.IsAlive() {
			count++
		}
	})
	return
}

// Tick advances the grid by one generation. Every neighbour count is taken from the
// current generation before any cell is updated.
func (g *Grid) Tick() {
	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					g.next[y][x] = rules.NextState(g.cells[y][x].IsAlive(), g.liveNeighbours(x, y))
				}
			}
			return nil
		})
	}
	// workers never fail, Wait only acts as the barrier between the two phases
	_ = eg.Wait()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.next[y][x] {
				g.cells[y][x].SetAlive()
			} else {
				g.cells[y][x].SetDead()
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].IsAlive() {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	return fmt.Sprintf("%x", md5.Sum([]byte(g.String())))
}

// String renders the grid one row per line, without a trailing newline
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range row {
			sb.WriteRune(row[x].Render())
		}
	}
	return sb.String()
}
