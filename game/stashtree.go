package game

import (
	"github.com/paulmach/orb"
	"github.com/royalcat/geostash/board"
	"github.com/royalcat/geostash/geomodel"
	"github.com/tidwall/qtree"
)

// stashTree indexes the bounds of displayed stashes for point
// hit-testing. Rebuilt on every repopulation pass.
type stashTree struct {
	board   *board.Board
	stashes []*geomodel.Stash
	qt      qtree.QTree
}

func newStashTree(b *board.Board) *stashTree {
	return &stashTree{board: b}
}

func (t *stashTree) insert(st *geomodel.Stash) {
	bound := t.board.Bounds(st.Cell)
	t.stashes = append(t.stashes, st)
	t.qt.Insert(bound.Min, bound.Max, uint64(len(t.stashes)-1))
}

func (t *stashTree) queryPoint(point orb.Point) (*geomodel.Stash, bool) {
	var out *geomodel.Stash
	found := false

	t.qt.Search(point, point, func(_, _ [2]float64, data interface{}) bool {
		id := data.(uint64)

		if t.board.Bounds(t.stashes[id].Cell).Contains(point) {
			out = t.stashes[id]
			found = true
			return false
		}

		return true
	})

	return out, found
}
