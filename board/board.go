// Package board quantizes continuous geographic coordinates into a
// discrete cell grid and interns cell identities, so every lookup of
// the same (i, j) pair yields the same *geomodel.Cell.
package board

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/kv"
)

// DefaultTileWidth is roughly 11 meters of latitude per tile.
const DefaultTileWidth = 1e-4

type Board struct {
	tileWidth float64

	// canonical cell table, grows for the process lifetime
	cells *kv.XMap[geomodel.CellKey, *geomodel.Cell]
}

func New(tileWidth float64) *Board {
	if !(tileWidth > 0) || math.IsInf(tileWidth, 1) {
		panic(fmt.Sprintf("board: invalid tile width %v", tileWidth))
	}
	return &Board{
		tileWidth: tileWidth,
		cells:     kv.NewXMap[geomodel.CellKey, *geomodel.Cell](),
	}
}

func (b *Board) TileWidth() float64 {
	return b.tileWidth
}

// Cell returns the canonical cell for the grid indices (i, j),
// interning it on first sight.
func (b *Board) Cell(i, j int32) *geomodel.Cell {
	key := geomodel.Cell{I: i, J: j}.Key()
	return b.cells.GetOrCompute(key, func() *geomodel.Cell {
		return &geomodel.Cell{I: i, J: j}
	})
}

// CellAt quantizes a geographic point to its cell. Points follow the
// orb convention: X is longitude, Y is latitude. Non-finite
// coordinates are a contract violation.
func (b *Board) CellAt(p orb.Point) *geomodel.Cell {
	i := math.Floor(p.Y() / b.tileWidth)
	j := math.Floor(p.X() / b.tileWidth)
	if math.IsNaN(i) || math.IsInf(i, 0) || math.IsNaN(j) || math.IsInf(j, 0) {
		panic(fmt.Sprintf("board: non-finite point %v", p))
	}
	return b.Cell(int32(i), int32(j))
}

// Bounds returns the geographic rectangle covered by a cell. Pure
// arithmetic, works for cells never seen by this board.
func (b *Board) Bounds(c geomodel.Cell) orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(c.J) * b.tileWidth, float64(c.I) * b.tileWidth},
		Max: orb.Point{float64(c.J+1) * b.tileWidth, float64(c.I+1) * b.tileWidth},
	}
}

// CellsNear returns the canonical cells of the (2r+1)² block centered
// on the cell of p, in row-major order. Callers may rely on the order
// for display stability only.
func (b *Board) CellsNear(p orb.Point, radius int) []*geomodel.Cell {
	if radius < 0 {
		panic(fmt.Sprintf("board: negative radius %d", radius))
	}
	center := b.CellAt(p)
	cells := make([]*geomodel.Cell, 0, (2*radius+1)*(2*radius+1))
	for di := -radius; di <= radius; di++ {
		for dj := -radius; dj <= radius; dj++ {
			cells = append(cells, b.Cell(center.I+int32(di), center.J+int32(dj)))
		}
	}
	return cells
}

// Known reports how many distinct cells have been interned so far.
func (b *Board) Known() int {
	return b.cells.Len()
}
