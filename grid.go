package mandel

import (
	"fmt"

	"github.com/gogpu/mandel/internal/raster"
)

// Grid holds one escape count per sample, stored contiguously in row-major
// order: the count for row i, column j lives at index i*Cols()+j.
// Counts are 32-bit; Compute rejects budgets above math.MaxInt32.
type Grid struct {
	rows, cols int
	counts     []int32
}

// NewGrid allocates a zeroed rows×cols grid.
func NewGrid(rows, cols int) (*Grid, error) {
	return newGrid(rows, cols, 0)
}

func newGrid(rows, cols, limit int) (*Grid, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: got %d rows, %d columns", ErrInvalidDimension, rows, cols)
	}
	n, err := raster.Pixels(cols, rows, limit)
	if err != nil {
		return nil, err
	}
	counts, err := raster.Make[int32](n)
	if err != nil {
		return nil, err
	}
	return &Grid{rows: rows, cols: cols, counts: counts}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns Rows()*Cols().
func (g *Grid) Len() int { return len(g.counts) }

// At returns the count at row i, column j. It panics when the position is
// outside the grid.
func (g *Grid) At(i, j int) int {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic(fmt.Sprintf("mandel: grid position (%d, %d) outside %dx%d", i, j, g.rows, g.cols))
	}
	return int(g.counts[i*g.cols+j])
}

// Counts returns the row-major backing slice. It must not be modified while a
// Renderer is shading the grid.
func (g *Grid) Counts() []int32 {
	return g.counts
}
