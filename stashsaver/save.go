package stashsaver

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/royalcat/geostash/geomodel"
	savev1 "github.com/royalcat/geostash/stashsaver/save/v1"
)

var MAGIC_BYTES = []byte("GSTASH")

type Metadata struct {
	Version     uint32
	DateCreated time.Time
}

func Save(s *Store, meta Metadata, w io.Writer) error {
	_, err := w.Write(MAGIC_BYTES)
	if err != nil {
		return err
	}

	err = binary.Write(w, binary.LittleEndian, savev1.COMPATIBILITY_LEVEL)
	if err != nil {
		return err
	}

	archive := savev1.Archive{
		Version:     meta.Version,
		DateCreated: meta.DateCreated.Format(time.RFC3339),
		Snapshots:   make([]string, 0, s.Len()),
	}
	s.Ascend(func(_ geomodel.Cell, snapshot string) bool {
		archive.Snapshots = append(archive.Snapshots, snapshot)
		return true
	})

	err = savev1.Save(w, archive)
	if err != nil {
		return err
	}
	return nil
}
