package savev1

import (
	"github.com/royalcat/geostash/geomodel"
)

const COMPATIBILITY_LEVEL uint32 = 1

type Coin struct {
	I      int32  `json:"i"`
	J      int32  `json:"j"`
	Serial uint32 `json:"serial"`
}

type Stash struct {
	I     int32  `json:"i"`
	J     int32  `json:"j"`
	Coins []Coin `json:"coins"`
}

// Archive is the whole-store payload: every per-stash snapshot that
// exists, as opaque strings, plus save metadata.
type Archive struct {
	Version     uint32   `json:"version"`
	DateCreated string   `json:"date_created"`
	Snapshots   []string `json:"snapshots"`
}

func StashFromModel(s geomodel.Stash) Stash {
	coins := make([]Coin, len(s.Coins))
	for i, c := range s.Coins {
		coins[i] = Coin{I: c.Cell.I, J: c.Cell.J, Serial: c.Serial}
	}
	return Stash{I: s.Cell.I, J: s.Cell.J, Coins: coins}
}

func (s Stash) ToModel() geomodel.Stash {
	coins := make(geomodel.CoinList, len(s.Coins))
	for i, c := range s.Coins {
		coins[i] = geomodel.Coin{
			Cell:   geomodel.Cell{I: c.I, J: c.J},
			Serial: c.Serial,
		}
	}
	return geomodel.Stash{
		Cell:  geomodel.Cell{I: s.I, J: s.J},
		Coins: coins,
	}
}
