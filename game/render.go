package game

import (
	"github.com/royalcat/geostash/geomodel"
)

// Renderer is the display collaborator. Display hands over one stash
// together with the actions a user can trigger on it. The callbacks
// re-enter the game through its public API, so they must be invoked
// from the event handler later, never synchronously inside Display.
type Renderer interface {
	Display(st *geomodel.Stash, onCollect func() error, onDeposit func() error)
	ClearAll()
}

// NopRenderer is the default for headless use.
type NopRenderer struct{}

func (NopRenderer) Display(st *geomodel.Stash, onCollect func() error, onDeposit func() error) {
}

func (NopRenderer) ClearAll() {}
