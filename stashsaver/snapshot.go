package stashsaver

import (
	"fmt"

	"github.com/royalcat/geostash/geomodel"
	savev1 "github.com/royalcat/geostash/stashsaver/save/v1"
)

// Snapshot serializes the full state of a stash to an opaque string.
// Restore of the result is element-wise equal to the input: same cell,
// same coins, same order.
func Snapshot(s geomodel.Stash) (string, error) {
	data, err := savev1.StashFromModel(s).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("error serializing stash %s: %w", s.Cell, err)
	}
	return string(data), nil
}

// Restore is the inverse of Snapshot. A snapshot that does not decode
// is reported as an error and should be treated as lost, not as a
// reason to abort a whole restore pass.
func Restore(snapshot string) (geomodel.Stash, error) {
	v := savev1.Stash{}
	err := v.UnmarshalJSON([]byte(snapshot))
	if err != nil {
		return geomodel.Stash{}, fmt.Errorf("malformed snapshot: %w", err)
	}
	return v.ToModel(), nil
}
