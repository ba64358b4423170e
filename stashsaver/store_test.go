package stashsaver

import (
	"testing"

	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/stash"
)

func TestStoreUpsert(t *testing.T) {
	store := NewStore()
	cell := geomodel.Cell{I: 1, J: 2}

	st := stash.Mint(cell)
	if err := store.Put(*st); err != nil {
		t.Fatal(err)
	}
	first, ok := store.Get(cell)
	if !ok {
		t.Fatal("snapshot missing after Put")
	}

	st.Coins = nil
	if err := store.Put(*st); err != nil {
		t.Fatal(err)
	}

	if store.Len() != 1 {
		t.Fatalf("expected one snapshot per cell, got %d", store.Len())
	}
	second, ok := store.Get(cell)
	if !ok {
		t.Fatal("snapshot missing after second Put")
	}
	if first == second {
		t.Errorf("second Put did not replace the snapshot")
	}

	restored, err := Restore(second)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored.Coins) != 0 {
		t.Errorf("latest snapshot should win, got %d coins", len(restored.Coins))
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	cell := geomodel.Cell{I: 7, J: 7}

	if store.Delete(cell) {
		t.Errorf("deleting a missing cell reported true")
	}

	store.PutSnapshot(cell, "{}")
	if !store.Delete(cell) {
		t.Errorf("deleting a present cell reported false")
	}
	if _, ok := store.Get(cell); ok {
		t.Errorf("snapshot still present after delete")
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d", store.Len())
	}
}

func TestStoreAscendOrder(t *testing.T) {
	store := NewStore()
	cells := []geomodel.Cell{
		{I: 5, J: 0},
		{I: -3, J: 9},
		{I: 0, J: 0},
		{I: 5, J: -1},
	}
	for _, c := range cells {
		store.PutSnapshot(c, c.String())
	}

	var keys []geomodel.CellKey
	store.Ascend(func(c geomodel.Cell, snapshot string) bool {
		if snapshot != c.String() {
			t.Errorf("cell %s carries snapshot %q", c, snapshot)
		}
		keys = append(keys, c.Key())
		return true
	})

	if len(keys) != len(cells) {
		t.Fatalf("walked %d snapshots, expected %d", len(keys), len(cells))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("iteration is not ascending at position %d", i)
		}
	}
}
