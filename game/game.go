// Package game drives procedural population of the stash grid around
// the player and owns all mutable application state: player position,
// inventory, displayed stashes and the snapshot store.
package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/royalcat/geostash/board"
	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/stash"
	"github.com/royalcat/geostash/stashsaver"
)

const (
	defaultSpawnProbability = 0.1
	defaultVisibilityRadius = 8
)

// Names of the persisted blobs.
const (
	blobStashes   = "stashes"
	blobPosition  = "position"
	blobInventory = "inventory"
)

// ErrUnknownStash reports an action on a cell with no displayed stash.
var ErrUnknownStash = errors.New("no stash displayed at cell")

// Game is single-writer: one mutex serializes every state-changing
// operation, so each runs to completion before the next starts.
type Game struct {
	mu sync.Mutex

	board *board.Board
	store *stashsaver.Store

	position  orb.Point
	inventory geomodel.CoinList

	active      map[geomodel.CellKey]*geomodel.Stash
	activeOrder []*geomodel.Stash
	tree        *stashTree

	spawnProbability float64
	visibilityRadius int

	renderer Renderer
	storage  Storage
	log      *slog.Logger
}

func New(opts ...Option) *Game {
	o := loadOptions(opts...)

	b := board.New(o.tileWidth)
	return &Game{
		board:  b,
		store:  stashsaver.NewStore(),
		active: make(map[geomodel.CellKey]*geomodel.Stash),
		tree:   newStashTree(b),

		spawnProbability: o.spawnProbability,
		visibilityRadius: o.visibilityRadius,

		renderer: o.renderer,
		storage:  o.storage,
		log:      o.logger,
	}
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Position() orb.Point {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

// Inventory returns a copy of the coins the player currently holds.
func (g *Game) Inventory() geomodel.CoinList {
	g.mu.Lock()
	defer g.mu.Unlock()

	inv := make(geomodel.CoinList, len(g.inventory))
	copy(inv, g.inventory)
	return inv
}

// Stashes returns the currently displayed stashes in display order.
func (g *Game) Stashes() geomodel.StashList {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stashes()
}

func (g *Game) stashes() geomodel.StashList {
	list := make(geomodel.StashList, len(g.activeOrder))
	for i, st := range g.activeOrder {
		list[i] = *st
	}
	return list
}

// StashAt hit-tests a geographic point against the displayed stashes.
func (g *Game) StashAt(p orb.Point) (geomodel.Stash, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.tree.queryPoint(p)
	if !ok {
		return geomodel.Stash{}, false
	}
	return *st, true
}

// MovePlayer repopulates the visible grid around the new position:
// clears the renderer, decides procedurally which nearby cells hold a
// stash and restores each from its snapshot when one exists, minting
// fresh otherwise. Returns the newly displayed stashes.
func (g *Game) MovePlayer(p orb.Point) (geomodel.StashList, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.movePlayer(p)
}

func (g *Game) movePlayer(p orb.Point) (geomodel.StashList, error) {
	g.position = p

	g.renderer.ClearAll()
	g.active = make(map[geomodel.CellKey]*geomodel.Stash)
	g.activeOrder = g.activeOrder[:0]
	g.tree = newStashTree(g.board)

	for _, cell := range g.board.CellsNear(p, g.visibilityRadius) {
		if !stash.Spawns(*cell, g.spawnProbability) {
			continue
		}

		st := g.restoreOrMint(*cell)
		g.active[cell.Key()] = st
		g.activeOrder = append(g.activeOrder, st)
		g.tree.insert(st)

		c := st.Cell
		g.renderer.Display(st,
			func() error { return g.Collect(c, 1) },
			func() error { return g.Deposit(c, 1) },
		)
	}

	g.log.Debug("Player moved",
		"lat", p.Y(), "lon", p.X(),
		"stashes", len(g.activeOrder))

	return g.stashes(), g.persist()
}

func (g *Game) restoreOrMint(cell geomodel.Cell) *geomodel.Stash {
	if snapshot, ok := g.store.Get(cell); ok {
		st, err := stashsaver.Restore(snapshot)
		if err == nil {
			return &st
		}
		// fatal to this snapshot only, the cell regenerates fresh
		g.log.Warn("Dropping malformed snapshot", "cell", cell.String(), "error", err.Error())
		g.store.Delete(cell)
	}
	return stash.Mint(cell)
}

// Collect moves n coins from the stash at cell into the player
// inventory. The mutated stash is snapshotted and persisted before
// Collect returns, a completed transfer is never lost.
func (g *Game) Collect(cell geomodel.Cell, n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.active[cell.Key()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStash, cell)
	}

	moved, err := stash.Transfer(&st.Coins, &g.inventory, n)
	if err != nil {
		return err
	}

	g.log.Debug("Collected coins", "cell", cell.String(), "count", len(moved))
	return g.writeBack(st)
}

// Deposit moves n coins from the player inventory into the stash at
// cell.
func (g *Game) Deposit(cell geomodel.Cell, n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.active[cell.Key()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStash, cell)
	}

	moved, err := stash.Transfer(&g.inventory, &st.Coins, n)
	if err != nil {
		return err
	}

	g.log.Debug("Deposited coins", "cell", cell.String(), "count", len(moved))
	return g.writeBack(st)
}

func (g *Game) writeBack(st *geomodel.Stash) error {
	err := g.store.Put(*st)
	if err != nil {
		return err
	}
	return g.persist()
}

// Save writes the whole game state to storage.
func (g *Game) Save() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.persist()
}

type storedPosition struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (g *Game) persist() error {
	if g.storage == nil {
		return nil
	}

	var buf bytes.Buffer
	err := stashsaver.Save(g.store, stashsaver.Metadata{
		Version:     1,
		DateCreated: time.Now(),
	}, &buf)
	if err != nil {
		return fmt.Errorf("error serializing stash archive: %w", err)
	}
	if err := g.storage.Save(blobStashes, buf.Bytes()); err != nil {
		return fmt.Errorf("error saving stash archive: %w", err)
	}

	pos, err := json.Marshal(storedPosition{Lat: g.position.Y(), Lon: g.position.X()})
	if err != nil {
		return err
	}
	if err := g.storage.Save(blobPosition, pos); err != nil {
		return fmt.Errorf("error saving position: %w", err)
	}

	inv, err := g.inventory.MarshalJSON()
	if err != nil {
		return err
	}
	if err := g.storage.Save(blobInventory, inv); err != nil {
		return fmt.Errorf("error saving inventory: %w", err)
	}

	return nil
}

// Load restores persisted state and repopulates around the saved
// position. Missing blobs are a normal first-run condition.
func (g *Game) Load() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.storage == nil {
		return nil
	}

	data, ok, err := g.storage.Load(blobStashes)
	if err != nil {
		return err
	}
	if ok {
		store, err := stashsaver.LoadFromReader(bytes.NewReader(data), g.log)
		if err != nil {
			return fmt.Errorf("error loading stash archive: %w", err)
		}
		g.store = store
	}

	data, ok, err = g.storage.Load(blobInventory)
	if err != nil {
		return err
	}
	if ok {
		err = g.inventory.UnmarshalJSON(data)
		if err != nil {
			return fmt.Errorf("error loading inventory: %w", err)
		}
	}

	data, ok, err = g.storage.Load(blobPosition)
	if err != nil {
		return err
	}
	if ok {
		var pos storedPosition
		err = json.Unmarshal(data, &pos)
		if err != nil {
			return fmt.Errorf("error loading position: %w", err)
		}
		if _, err := g.movePlayer(orb.Point{pos.Lon, pos.Lat}); err != nil {
			return err
		}
	}

	g.log.Info("Loaded saved state",
		"stashes", g.store.Len(),
		"coins", len(g.inventory))
	return nil
}

// Reset drops all persisted and in-memory progress and repopulates
// fresh around the current position.
func (g *Game) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.storage != nil {
		if err := g.storage.Clear(); err != nil {
			return err
		}
	}
	g.store = stashsaver.NewStore()
	g.inventory = nil

	_, err := g.movePlayer(g.position)
	return err
}
