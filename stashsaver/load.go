package stashsaver

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"log/slog"

	savev1 "github.com/royalcat/geostash/stashsaver/save/v1"
)

func LoadFromReader(reader io.Reader, log *slog.Logger) (*Store, error) {
	magic := make([]byte, len(MAGIC_BYTES))
	_, err := io.ReadFull(reader, magic)
	if err != nil {
		return nil, fmt.Errorf("error reading magic bytes: %s", err.Error())
	}

	// If the magic bytes are not equal to the expected value, we assume it's a legacy format
	if string(magic) != string(MAGIC_BYTES) {
		log.Info("Magic bytes not detected, trying legacy format")
		snapshots, err := legacyLoader(io.MultiReader(bytes.NewReader(magic), reader))
		if err != nil {
			return nil, err
		}
		return storeFromSnapshots(snapshots, log), nil
	}

	var compatibilityLevel uint32
	err = binary.Read(reader, binary.LittleEndian, &compatibilityLevel)
	if err != nil {
		return nil, fmt.Errorf("error reading compatibility level: %s", err.Error())
	}

	switch compatibilityLevel {
	case savev1.COMPATIBILITY_LEVEL:
		log.Info("Loading v1 stash archive")
		archive, err := savev1.Load(reader)
		if err != nil {
			return nil, fmt.Errorf("error loading v1 archive: %s", err.Error())
		}
		log.Info("Loaded archive metadata", "version", archive.Version, "date_created", archive.DateCreated)
		return storeFromSnapshots(archive.Snapshots, log), nil
	}

	return nil, fmt.Errorf("unsupported compatibility level: %d", compatibilityLevel)
}

// storeFromSnapshots rebuilds the keyed store. An unreadable snapshot
// is dropped with a warning, the rest of the archive still loads.
func storeFromSnapshots(snapshots []string, log *slog.Logger) *Store {
	store := NewStore()
	for _, snapshot := range snapshots {
		st, err := Restore(snapshot)
		if err != nil {
			log.Warn("Dropping unreadable snapshot", "error", err.Error())
			continue
		}
		store.PutSnapshot(st.Cell, snapshot)
	}
	return store
}

func legacyLoader(reader io.Reader) ([]string, error) {
	decoder := gob.NewDecoder(reader)
	var snapshots []string
	err := decoder.Decode(&snapshots)
	if err != nil {
		return nil, fmt.Errorf("error decoding snapshots: %s", err.Error())
	}
	return snapshots, nil
}
