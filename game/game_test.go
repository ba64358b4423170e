package game

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/paulmach/orb"
	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/stash"
	"github.com/royalcat/geostash/stashsaver"
)

const testTileWidth = 1e-4

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cellCenter(c geomodel.Cell) orb.Point {
	return orb.Point{
		(float64(c.J) + 0.5) * testTileWidth,
		(float64(c.I) + 0.5) * testTileWidth,
	}
}

func findCell(t *testing.T, pred func(geomodel.Cell) bool) geomodel.Cell {
	t.Helper()
	for i := int32(0); i < 100_000; i++ {
		c := geomodel.Cell{I: i, J: -2 * i}
		if pred(c) {
			return c
		}
	}
	t.Fatal("no matching cell found")
	return geomodel.Cell{}
}

// newSoloGame shows exactly one cell at a time, which makes collect
// and deposit scenarios easy to pin down.
func newSoloGame(opts ...Option) *Game {
	return New(append([]Option{
		WithSpawnProbability(1),
		WithVisibilityRadius(0),
		WithLogger(testLogger()),
	}, opts...)...)
}

func TestMoveDeterministic(t *testing.T) {
	opts := []Option{
		WithSpawnProbability(0.5),
		WithVisibilityRadius(2),
		WithLogger(testLogger()),
	}
	p := orb.Point{-122.0628, 36.9895}

	first, err := New(opts...).MovePlayer(p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(opts...).MovePlayer(p)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) == 0 {
		t.Fatal("no stashes spawned at probability 0.5 over a 5x5 grid")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two fresh games populated differently at the same position")
	}
}

func TestCollectAndDeposit(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 5 })
	g := newSoloGame()

	stashes, err := g.MovePlayer(cellCenter(cell))
	if err != nil {
		t.Fatal(err)
	}
	if len(stashes) != 1 || stashes[0].Cell != cell {
		t.Fatalf("expected exactly the stash at %s, got %v", cell, stashes)
	}
	total := len(stashes[0].Coins)

	if err := g.Collect(cell, 2); err != nil {
		t.Fatal(err)
	}

	inv := g.Inventory()
	want := geomodel.CoinList{
		{Cell: cell, Serial: uint32(total - 1)},
		{Cell: cell, Serial: uint32(total - 2)},
	}
	if !reflect.DeepEqual(inv, want) {
		t.Fatalf("inventory is %v, expected newest-first %v", inv, want)
	}
	if got := len(g.Stashes()[0].Coins); got != total-2 {
		t.Fatalf("stash has %d coins after collect, expected %d", got, total-2)
	}

	if err := g.Deposit(cell, 1); err != nil {
		t.Fatal(err)
	}
	if got := len(g.Inventory()); got != 1 {
		t.Fatalf("inventory has %d coins after deposit, expected 1", got)
	}
	if got := len(g.Stashes()[0].Coins); got != total-1 {
		t.Fatalf("stash has %d coins after deposit, expected %d", got, total-1)
	}
}

func TestCollectErrors(t *testing.T) {
	empty := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) == 0 })
	g := newSoloGame()

	if _, err := g.MovePlayer(cellCenter(empty)); err != nil {
		t.Fatal(err)
	}
	if err := g.Collect(empty, 1); !errors.Is(err, stash.ErrInsufficientCoins) {
		t.Errorf("expected ErrInsufficientCoins, got %v", err)
	}
	if len(g.Inventory()) != 0 {
		t.Errorf("failed collect changed the inventory")
	}

	far := geomodel.Cell{I: empty.I + 1000, J: empty.J}
	if err := g.Collect(far, 1); !errors.Is(err, ErrUnknownStash) {
		t.Errorf("expected ErrUnknownStash, got %v", err)
	}
	if err := g.Deposit(far, 1); !errors.Is(err, ErrUnknownStash) {
		t.Errorf("expected ErrUnknownStash, got %v", err)
	}
}

func TestEvictionAndRestore(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 5 })
	g := newSoloGame()

	if _, err := g.MovePlayer(cellCenter(cell)); err != nil {
		t.Fatal(err)
	}
	total := len(g.Stashes()[0].Coins)
	if err := g.Collect(cell, 2); err != nil {
		t.Fatal(err)
	}

	// walking away evicts the stash instance
	elsewhere := geomodel.Cell{I: cell.I + 500, J: cell.J + 500}
	if _, err := g.MovePlayer(cellCenter(elsewhere)); err != nil {
		t.Fatal(err)
	}
	if err := g.Collect(cell, 1); !errors.Is(err, ErrUnknownStash) {
		t.Fatalf("evicted stash still collectable: %v", err)
	}

	// walking back rebuilds it from the snapshot, not from minting
	stashes, err := g.MovePlayer(cellCenter(cell))
	if err != nil {
		t.Fatal(err)
	}
	if len(stashes) != 1 {
		t.Fatalf("expected the stash back, got %d", len(stashes))
	}
	coins := stashes[0].Coins
	if len(coins) != total-2 {
		t.Fatalf("restored stash has %d coins, expected %d", len(coins), total-2)
	}
	for i, c := range coins {
		if c.Serial != uint32(i) {
			t.Fatalf("restored serials reordered: position %d holds serial %d", i, c.Serial)
		}
	}
}

func TestUntouchedStashNotPersisted(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 1 })
	storage := NewMemStorage()
	g := newSoloGame(WithStorage(storage))

	if _, err := g.MovePlayer(cellCenter(cell)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := storage.Load("stashes")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("stash archive blob missing after move")
	}

	// displaying alone mutates nothing, so the archive holds no snapshots
	store, err := stashsaver.LoadFromReader(bytes.NewReader(data), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if store.Len() != 0 {
		t.Errorf("archive holds %d snapshots for an untouched stash", store.Len())
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 5 })
	storage := NewMemStorage()

	g1 := newSoloGame(WithStorage(storage))
	if _, err := g1.MovePlayer(cellCenter(cell)); err != nil {
		t.Fatal(err)
	}
	total := len(g1.Stashes()[0].Coins)
	if err := g1.Collect(cell, 2); err != nil {
		t.Fatal(err)
	}

	g2 := newSoloGame(WithStorage(storage))
	if err := g2.Load(); err != nil {
		t.Fatal(err)
	}

	if g2.Position() != g1.Position() {
		t.Errorf("position not restored: %v != %v", g2.Position(), g1.Position())
	}
	if !reflect.DeepEqual(g2.Inventory(), g1.Inventory()) {
		t.Errorf("inventory not restored")
	}
	stashes := g2.Stashes()
	if len(stashes) != 1 || len(stashes[0].Coins) != total-2 {
		t.Fatalf("stash state not restored: %v", stashes)
	}
}

func TestReset(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 3 })
	g := newSoloGame(WithStorage(NewMemStorage()))

	if _, err := g.MovePlayer(cellCenter(cell)); err != nil {
		t.Fatal(err)
	}
	total := len(g.Stashes()[0].Coins)
	if err := g.Collect(cell, 3); err != nil {
		t.Fatal(err)
	}

	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}

	if len(g.Inventory()) != 0 {
		t.Errorf("inventory survived reset")
	}
	if got := len(g.Stashes()[0].Coins); got != total {
		t.Errorf("stash has %d coins after reset, expected the full %d", got, total)
	}
}

func TestStashAt(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 1 })
	g := newSoloGame()

	p := cellCenter(cell)
	if _, err := g.MovePlayer(p); err != nil {
		t.Fatal(err)
	}

	st, ok := g.StashAt(p)
	if !ok {
		t.Fatal("no stash found at the player position")
	}
	if st.Cell != cell {
		t.Errorf("hit-test returned stash at %s, expected %s", st.Cell, cell)
	}

	if _, ok := g.StashAt(cellCenter(geomodel.Cell{I: cell.I + 10, J: cell.J})); ok {
		t.Errorf("hit-test matched a point outside every displayed stash")
	}
}

type recordingRenderer struct {
	displayed []geomodel.Cell
	onCollect map[geomodel.CellKey]func() error
	clears    int
}

func (r *recordingRenderer) Display(st *geomodel.Stash, onCollect, onDeposit func() error) {
	r.displayed = append(r.displayed, st.Cell)
	r.onCollect[st.Cell.Key()] = onCollect
}

func (r *recordingRenderer) ClearAll() {
	r.clears++
	r.displayed = nil
	r.onCollect = map[geomodel.CellKey]func() error{}
}

func TestRendererLifecycle(t *testing.T) {
	cell := findCell(t, func(c geomodel.Cell) bool { return stash.InitialCoins(c) >= 1 })
	r := &recordingRenderer{onCollect: map[geomodel.CellKey]func() error{}}
	g := newSoloGame(WithRenderer(r))

	if _, err := g.MovePlayer(cellCenter(cell)); err != nil {
		t.Fatal(err)
	}
	if r.clears != 1 || len(r.displayed) != 1 || r.displayed[0] != cell {
		t.Fatalf("first move displayed %v after %d clears", r.displayed, r.clears)
	}

	// user taps the stash after the move completed
	if err := r.onCollect[cell.Key()](); err != nil {
		t.Fatal(err)
	}
	if len(g.Inventory()) != 1 {
		t.Fatalf("collect callback did not move a coin")
	}

	if _, err := g.MovePlayer(cellCenter(geomodel.Cell{I: cell.I + 100, J: cell.J})); err != nil {
		t.Fatal(err)
	}
	if r.clears != 2 {
		t.Errorf("second move did not clear the renderer")
	}
}
