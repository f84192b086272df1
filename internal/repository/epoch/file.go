package epoch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/alarm-clockd/internal/config"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
)

// Store defines persistence operations for the global epoch counter.
type Store interface {
	// Increment advances the counter by one and returns the new value.
	Increment(ctx context.Context) (uint64, error)
	// Current returns the counter without advancing it.
	Current(ctx context.Context) (uint64, error)
}

// FileStore persists the epoch counter to a JSON file on disk.
// A missing file reads as zero, which covers the first launch.
type FileStore struct {
	// path is the filesystem location of the epoch file.
	path string
	// mu serializes increments so the counter never moves backwards.
	mu sync.Mutex
}

// NewFileStore creates a store that reads/writes JSON at the provided path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: filepath.Clean(path),
	}
}

// Increment advances the counter by one and returns the new value.
func (s *FileStore) Increment(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.load()
	if err != nil {
		return 0, err
	}

	value++

	if err = s.save(value); err != nil {
		return 0, err
	}

	return value, nil
}

// Current returns the counter without advancing it.
func (s *FileStore) Current(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// load reads the counter from disk. A missing file is zero.
func (s *FileStore) load() (uint64, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}

		return 0, fmt.Errorf("read epoch file: %w", err)
	}

	var state pb.EpochState
	if err = protojson.Unmarshal(contents, &state); err != nil {
		return 0, fmt.Errorf("decode epoch file: %w", err)
	}

	return state.GetValue(), nil
}

// save writes the counter to disk using JSON representation.
func (s *FileStore) save(value uint64) error {
	marshalOptions := protojson.MarshalOptions{
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(&pb.EpochState{Value: value})
	if err != nil {
		return fmt.Errorf("encode epoch: %w", err)
	}

	if err = os.WriteFile(s.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write epoch file: %w", err)
	}

	return nil
}
