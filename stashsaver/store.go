package stashsaver

import (
	"sync"

	"github.com/google/btree"
	"github.com/royalcat/geostash/geomodel"
)

// Store is the in-memory snapshot collection, one snapshot per cell.
// Keys are cell values, not object identities, so a stash instance can
// be discarded and later rebuilt from its snapshot. Iteration order is
// fixed (ascending cell key) to keep serialized output deterministic.
type Store struct {
	mu    sync.RWMutex
	snaps map[geomodel.CellKey]string
	index *btree.BTreeG[geomodel.CellKey]
}

func NewStore() *Store {
	return &Store{
		snaps: make(map[geomodel.CellKey]string),
		index: btree.NewG(16, func(a, b geomodel.CellKey) bool { return a < b }),
	}
}

// Put serializes the stash and upserts it, replacing any prior
// snapshot for the same cell. No history is kept.
func (s *Store) Put(st geomodel.Stash) error {
	snap, err := Snapshot(st)
	if err != nil {
		return err
	}
	s.PutSnapshot(st.Cell, snap)
	return nil
}

func (s *Store) PutSnapshot(c geomodel.Cell, snapshot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.Key()
	if _, exists := s.snaps[key]; !exists {
		s.index.ReplaceOrInsert(key)
	}
	s.snaps[key] = snapshot
}

// Get returns the snapshot for a cell. Absence is a normal branch, it
// means the cell has never been mutated.
func (s *Store) Get(c geomodel.Cell) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snaps[c.Key()]
	return snap, ok
}

func (s *Store) Delete(c geomodel.Cell) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.Key()
	if _, ok := s.snaps[key]; !ok {
		return false
	}
	delete(s.snaps, key)
	s.index.Delete(key)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snaps)
}

// Ascend walks all snapshots in ascending cell-key order.
func (s *Store) Ascend(f func(c geomodel.Cell, snapshot string) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.index.Ascend(func(key geomodel.CellKey) bool {
		return f(geomodel.CellFromKey(key), s.snaps[key])
	})
}
