package game

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
)

// Storage is the persistence collaborator. The game treats its state
// as named opaque blobs; transport and medium are not its concern.
type Storage interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, bool, error)
	Clear() error
}

// DirStorage keeps each blob as a zstd-compressed file in one
// directory.
type DirStorage struct {
	dir string
	log *slog.Logger
}

var _ Storage = (*DirStorage)(nil)

func NewDirStorage(dir string) (*DirStorage, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("error creating storage directory: %s", err.Error())
	}
	return &DirStorage{
		dir: dir,
		log: slog.With("component", "storage"),
	}, nil
}

func (s *DirStorage) blobPath(key string) string {
	return filepath.Join(s.dir, key+".bin.zst")
}

func (s *DirStorage) Save(key string, data []byte) error {
	file, err := os.Create(s.blobPath(key))
	if err != nil {
		return fmt.Errorf("error creating blob file: %s", err.Error())
	}
	defer file.Close()

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("can`t create zstd writer: %s", err.Error())
	}
	_, err = enc.Write(data)
	if err != nil {
		return fmt.Errorf("error writing blob: %s", err.Error())
	}
	err = enc.Close()
	if err != nil {
		return fmt.Errorf("error flushing blob: %s", err.Error())
	}

	s.log.Debug("Saved blob", "key", key, "size", humanize.Bytes(uint64(len(data))))
	return nil
}

func (s *DirStorage) Load(key string) ([]byte, bool, error) {
	file, err := os.Open(s.blobPath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("can`t open blob file: %s", err.Error())
	}
	defer file.Close()

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, false, fmt.Errorf("can`t create zstd reader: %s", err.Error())
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, false, fmt.Errorf("error reading blob: %s", err.Error())
	}
	return data, true, nil
}

func (s *DirStorage) Clear() error {
	blobs, err := filepath.Glob(filepath.Join(s.dir, "*.bin.zst"))
	if err != nil {
		return err
	}
	for _, blob := range blobs {
		if err := os.Remove(blob); err != nil {
			return fmt.Errorf("error removing blob: %s", err.Error())
		}
	}
	return nil
}

// MemStorage is an in-memory Storage, mostly for tests and headless
// simulations.
type MemStorage struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ Storage = (*MemStorage)(nil)

func NewMemStorage() *MemStorage {
	return &MemStorage{m: make(map[string][]byte)}
}

func (s *MemStorage) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := make([]byte, len(data))
	copy(blob, data)
	s.m[key] = blob
	return nil
}

func (s *MemStorage) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.m[key]
	return data, ok, nil
}

func (s *MemStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string][]byte)
	return nil
}
