package restore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/alarm-clockd/internal/logger"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/repository/instances"
)

// DropFilename is the file the restore agent writes into the restore directory.
const DropFilename = "restored-instances.json"

// Processor consumes restored alarm data when present.
type Processor interface {
	// ProcessRestoredData merges any pending restored instances into the
	// store and consumes the drop file. It reports whether data was
	// consumed this cycle, which lets the caller skip the full fix-up.
	ProcessRestoredData(ctx context.Context) (bool, error)
}

// FileProcessor reads restored instances from a drop file in a directory.
type FileProcessor struct {
	// path is the full path of the drop file.
	path string
	// store receives the restored instances.
	store instances.Repository
}

// NewFileProcessor creates a processor reading from dir/DropFilename.
func NewFileProcessor(dir string, store instances.Repository) *FileProcessor {
	return &FileProcessor{
		path:  filepath.Join(dir, DropFilename),
		store: store,
	}
}

// ProcessRestoredData merges the drop file into the store and deletes it.
// A missing drop file means nothing was restored this cycle.
func (p *FileProcessor) ProcessRestoredData(ctx context.Context) (bool, error) {
	contents, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("read restore file: %w", err)
	}

	var collection pb.InstanceCollection
	if err = protojson.Unmarshal(contents, &collection); err != nil {
		return false, fmt.Errorf("decode restore file: %w", err)
	}

	restored := instances.FromProtoCollection(&collection)
	for _, ins := range restored {
		if err = p.store.Create(ctx, ins); err != nil {
			return false, fmt.Errorf("restore instance %d: %w", ins.ID, err)
		}
	}

	if err = os.Remove(p.path); err != nil {
		return false, fmt.Errorf("consume restore file: %w", err)
	}

	logger.FromContext(ctx).Infof("restored %d instances", len(restored))

	return true, nil
}
