package geomodel

import (
	"fmt"
)

// CellKey packs both grid indices of a cell into a single integer,
// usable as a map key without string formatting.
type CellKey uint64

// Cell is the identity of one quantized grid tile. Cells are compared
// by value; the board package additionally interns them so pointer
// comparison works for cells it handed out.
type Cell struct {
	I int32 `json:"i"`
	J int32 `json:"j"`
}

func (c Cell) Key() CellKey {
	return CellKey(uint64(uint32(c.I))<<32 | uint64(uint32(c.J)))
}

func CellFromKey(k CellKey) Cell {
	return Cell{I: int32(uint32(k >> 32)), J: int32(uint32(k))}
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.I, c.J)
}

// Coin is a discrete unit minted by a stash. Cell and Serial identify
// the coin for its whole lifetime, they never change when the coin
// moves between a stash and the player inventory.
type Coin struct {
	Cell   Cell   `json:"cell"`
	Serial uint32 `json:"serial"`
}

func (c Coin) String() string {
	return fmt.Sprintf("%s#%d", c.Cell, c.Serial)
}

type CoinList []Coin

// Stash is the mutable coin container of one populated cell. Cell is
// fixed at mint time, Coins change through transfers only.
type Stash struct {
	Cell  Cell     `json:"cell"`
	Coins CoinList `json:"coins"`
}

type StashList []Stash
