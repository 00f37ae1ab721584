package seamcarve

import (
	"github.com/pkg/errors"
)

// noParent marks the cells of the first row, which have no predecessor.
const noParent = -1

// Seam holds one column index per image row, starting with the top row.
type Seam []int

// DPTable stores the cumulative minimum energy to reach each cell from the
// top row, together with the column of the chosen predecessor.
type DPTable struct {
	width  int
	height int
	table  []float64
	parent []int
}

// NewDPTable allocates a table able to hold width*height cells.
func NewDPTable(width, height int) (*DPTable, error) {
	size, err := tableSize(width, height)
	if err != nil {
		return nil, err
	}
	return &DPTable{
		width:  width,
		height: height,
		table:  make([]float64, size),
		parent: make([]int, size),
	}, nil
}

// resize adapts the table to new dimensions, reusing the backing
// buffers whenever they are large enough.
func (dpt *DPTable) resize(width, height int) error {
	size, err := tableSize(width, height)
	if err != nil {
		return err
	}
	if size > cap(dpt.table) {
		dpt.table = make([]float64, size)
		dpt.parent = make([]int, size)
	}
	dpt.width, dpt.height = width, height
	dpt.table = dpt.table[:size]
	dpt.parent = dpt.parent[:size]
	return nil
}

// get returns the cumulative energy of the cell.
func (dpt *DPTable) get(x, y int) float64 {
	return dpt.table[x+y*dpt.width]
}

// set stores the cumulative energy and the predecessor column of the cell.
func (dpt *DPTable) set(x, y int, px float64, parent int) {
	idx := x + y*dpt.width
	dpt.table[idx] = px
	dpt.parent[idx] = parent
}

// FindSeam returns the vertical seam of minimum total energy.
func FindSeam(e *EnergyMap) (Seam, error) {
	dpt, err := NewDPTable(e.width, e.height)
	if err != nil {
		return nil, err
	}
	return dpt.FindSeam(e)
}

// FindSeam fills the table from the energy map and walks the parent
// pointers back from the cheapest bottom cell.
//
// Candidates for a cell are the straight, left and right cells of the row
// above. A candidate only replaces the current best when it is strictly
// smaller, so on ties straight wins over left and left over right. On the
// bottom row the leftmost minimum is selected.
func (dpt *DPTable) FindSeam(e *EnergyMap) (Seam, error) {
	width, height := e.width, e.height
	if width == 0 || height == 0 {
		return nil, errors.Wrapf(ErrDegenerateImage, "cannot find a seam in a %dx%d energy map", width, height)
	}
	if err := dpt.resize(width, height); err != nil {
		return nil, err
	}

	for x := 0; x < width; x++ {
		dpt.set(x, 0, e.At(x, 0), noParent)
	}

	for y := 1; y < height; y++ {
		for x := 0; x < width; x++ {
			best, col := dpt.get(x, y-1), x
			if x > 0 {
				if left := dpt.get(x-1, y-1); left < best {
					best, col = left, x-1
				}
			}
			if x < width-1 {
				if right := dpt.get(x+1, y-1); right < best {
					best, col = right, x+1
				}
			}
			dpt.set(x, y, e.At(x, y)+best, col)
		}
	}

	// Lowest cumulative energy on the bottom row.
	px := 0
	min := dpt.get(0, height-1)
	for x := 1; x < width; x++ {
		if v := dpt.get(x, height-1); v < min {
			min, px = v, x
		}
	}

	seam := make(Seam, height)
	for y := height - 1; y >= 0 && px != noParent; y-- {
		seam[y] = px
		px = dpt.parent[px+y*width]
	}
	return seam, nil
}

// Valid reports whether the seam fits an image of the given dimensions:
// one column per row, every column in range and neighbouring rows at most
// one column apart.
func (s Seam) Valid(width, height int) bool {
	if len(s) != height {
		return false
	}
	for y, x := range s {
		if x < 0 || x >= width {
			return false
		}
		if y > 0 && (x-s[y-1] > 1 || s[y-1]-x > 1) {
			return false
		}
	}
	return true
}
