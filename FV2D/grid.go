package FV2D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NGhost is the width of the ghost ring. The widest stencil is the limited
// derivative of the predicted flux one ring in from the corrector window,
// which reaches three cells past the interior.
const NGhost = 3

const numFields = 8 // u, v, f, g, ux, uy, fx, gy

/*
Field is one cell-centered array over the padded grid. Storage is a dense
matrix with one row per cell (row-major over the grid, offset = iy*NXAll + ix)
and one column per state component, so a cell vector is a contiguous raw row.
*/
type Field struct {
	M            *mat.Dense
	NXAll, NYAll int
	NC           int
	data         []float64
}

func NewField(NXAll, NYAll, NC int) (f *Field) {
	f = &Field{
		M:     mat.NewDense(NXAll*NYAll, NC, nil),
		NXAll: NXAll,
		NYAll: NYAll,
		NC:    NC,
	}
	f.data = f.M.RawMatrix().Data
	return
}

func (f *Field) Offset(ix, iy int) int { return iy*f.NXAll + ix }

// Cell returns the state vector at padded index (ix,iy) as a view into the
// backing store.
func (f *Field) Cell(ix, iy int) []float64 {
	if ix < 0 || ix >= f.NXAll || iy < 0 || iy >= f.NYAll {
		panic(fmt.Sprintf("cell index (%d,%d) out of range [0,%d)x[0,%d)",
			ix, iy, f.NXAll, f.NYAll))
	}
	i := f.Offset(ix, iy) * f.NC
	return f.data[i : i+f.NC : i+f.NC]
}

// Span returns the contiguous run of cells ixMin <= ix < ixMax in row iy,
// flattened component-fastest.
func (f *Field) Span(ixMin, ixMax, iy int) []float64 {
	if ixMin < 0 || ixMax > f.NXAll || ixMin > ixMax || iy < 0 || iy >= f.NYAll {
		panic(fmt.Sprintf("span [%d,%d) in row %d out of range", ixMin, ixMax, iy))
	}
	i0, i1 := f.Offset(ixMin, iy)*f.NC, f.Offset(ixMax, iy)*f.NC
	return f.data[i0:i1:i1]
}

// RowView is a matrix view of the same cells as Span, one row per cell.
func (f *Field) RowView(ixMin, ixMax, iy int) mat.Matrix {
	return f.M.Slice(f.Offset(ixMin, iy), f.Offset(ixMax, iy), 0, f.NC)
}

type Grid struct {
	NX, NY       int     // Interior cells in x/y
	NXAll, NYAll int     // Cells in x/y including the ghost ring
	NC           int     // Components per cell
	DX, DY       float64 // Cell size
	U, V         *Field  // Solution, solution at the next step
	F, G         *Field  // Fluxes in x/y
	UX, UY       *Field  // Limited x/y differences of U
	FX, GY       *Field  // Limited x difference of F, y difference of G
}

func CheckGridSize(NX, NY, NC int) (NXAll, NYAll int, err error) {
	if NX <= 0 || NY <= 0 || NC <= 0 {
		err = fmt.Errorf("%w: nx=%d, ny=%d, components=%d", ErrInvalidGrid, NX, NY, NC)
		return
	}
	if NX > math.MaxInt-2*NGhost || NY > math.MaxInt-2*NGhost {
		err = fmt.Errorf("%w: nx=%d, ny=%d", ErrGridTooLarge, NX, NY)
		return
	}
	NXAll, NYAll = NX+2*NGhost, NY+2*NGhost
	var (
		maxFloats = math.MaxInt / (8 * numFields)
	)
	if NXAll > maxFloats/NYAll || NXAll*NYAll > maxFloats/NC {
		err = fmt.Errorf("%w: %d x %d cells with %d components",
			ErrGridTooLarge, NXAll, NYAll, NC)
	}
	return
}

func NewGrid(W, H float64, NX, NY, NC int) (g *Grid, err error) {
	var (
		NXAll, NYAll int
	)
	if !(W > 0) || !(H > 0) || math.IsInf(W, 0) || math.IsInf(H, 0) {
		err = fmt.Errorf("%w: domain %g x %g", ErrInvalidGrid, W, H)
		return
	}
	if NXAll, NYAll, err = CheckGridSize(NX, NY, NC); err != nil {
		return
	}
	g = &Grid{
		NX: NX, NY: NY,
		NXAll: NXAll, NYAll: NYAll,
		NC: NC,
		DX: W / float64(NX), DY: H / float64(NY),
	}
	for _, fp := range []**Field{&g.U, &g.V, &g.F, &g.G, &g.UX, &g.UY, &g.FX, &g.GY} {
		*fp = NewField(NXAll, NYAll, NC)
	}
	return
}

// WrapX maps a padded x index to its canonical periodic image in
// [NGhost, NX+NGhost).
func (g *Grid) WrapX(ix int) int { return wrap(ix, g.NX) }

func (g *Grid) WrapY(iy int) int { return wrap(iy, g.NY) }

func wrap(i, n int) int {
	// i may lie several periods outside when n < NGhost
	i = (i - NGhost) % n
	if i < 0 {
		i += n
	}
	return i + NGhost
}
