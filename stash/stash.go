// Package stash holds the coin-container entity and the rules of
// procedural population: which cells spawn a stash and how many coins
// a fresh stash is minted with.
package stash

import (
	"errors"
	"fmt"

	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/luck"
)

// ErrInsufficientCoins reports a transfer that asked for more coins
// than the source holds. Recoverable, the source and destination are
// left untouched.
var ErrInsufficientCoins = errors.New("not enough coins to transfer")

const initialValueSalt = "initialValue"

// Spawns reports whether a cell contains a stash at all. Deterministic
// for a given cell and probability.
func Spawns(cell geomodel.Cell, probability float64) bool {
	return luck.Value(cell.String()) < probability
}

// InitialCoins returns the coin count a fresh stash at cell is minted
// with. Deterministic, so minting never has to be persisted.
func InitialCoins(cell geomodel.Cell) int {
	return int(luck.Value(fmt.Sprintf("%s,%s", cell, initialValueSalt)) * 100)
}

// Mint instantiates the stash of a cell with serials 0..n-1. Serials
// are assigned here and only here, transfers never mint or destroy
// coins.
func Mint(cell geomodel.Cell) *geomodel.Stash {
	n := InitialCoins(cell)
	coins := make(geomodel.CoinList, n)
	for i := range coins {
		coins[i] = geomodel.Coin{Cell: cell, Serial: uint32(i)}
	}
	return &geomodel.Stash{Cell: cell, Coins: coins}
}

// Transfer moves the n most recently added coins from src to dst,
// last-in-first-out. Either all n coins move or none do: on
// ErrInsufficientCoins both lists are unchanged. Returns the moved
// coins in the order they were taken.
func Transfer(src, dst *geomodel.CoinList, n int) (geomodel.CoinList, error) {
	if n < 0 {
		panic(fmt.Sprintf("stash: negative transfer amount %d", n))
	}
	if len(*src) < n {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrInsufficientCoins, len(*src), n)
	}

	moved := make(geomodel.CoinList, 0, n)
	for range n {
		last := len(*src) - 1
		moved = append(moved, (*src)[last])
		*src = (*src)[:last]
	}
	*dst = append(*dst, moved...)
	return moved, nil
}
