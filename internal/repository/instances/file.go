package instances

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/alarm-clockd/internal/config"
	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
)

// Filter restricts List results. The zero value matches every instance.
type Filter struct {
	// States limits results to the listed states when non-empty.
	States []domain.State
}

// Matches reports whether the instance passes the filter.
func (f Filter) Matches(ins *domain.Instance) bool {
	if len(f.States) == 0 {
		return true
	}

	for _, s := range f.States {
		if ins.State == s {
			return true
		}
	}

	return false
}

// Repository defines persistence operations for alarm instances.
type Repository interface {
	// List returns instances matching the filter.
	List(ctx context.Context, filter Filter) ([]*domain.Instance, error)
	// Create inserts an instance, replacing any existing instance with the same id.
	Create(ctx context.Context, ins *domain.Instance) error
	// Apply runs mutate against the current record for id as a single atomic
	// read-modify-write. The mutation is persisted only when mutate reports a
	// change. Returns ErrNotFound when the id no longer exists.
	Apply(ctx context.Context, id int64, mutate func(*domain.Instance) (bool, error)) error
	// Delete removes an instance. Returns ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id int64) error
}

// ErrNotFound is returned when the requested instance does not exist,
// typically because it was deleted concurrently.
var ErrNotFound = errors.New("instance not found")

// FileRepository persists alarm instances to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// List returns instances matching the filter.
func (r *FileRepository) List(_ context.Context, filter Filter) ([]*domain.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Instance, 0, len(all))

	for _, ins := range all {
		if filter.Matches(ins) {
			result = append(result, ins)
		}
	}

	return result, nil
}

// Create inserts the instance, replacing any existing record with the same id.
func (r *FileRepository) Create(_ context.Context, ins *domain.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}

	replaced := false

	for i, existing := range all {
		if existing.ID == ins.ID {
			all[i] = ins.Clone()
			replaced = true

			break
		}
	}

	if !replaced {
		all = append(all, ins.Clone())
	}

	return r.save(all)
}

// Apply runs mutate against the current record for id under the store lock,
// persisting the result only when mutate reports a change.
func (r *FileRepository) Apply(_ context.Context, id int64, mutate func(*domain.Instance) (bool, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range all {
		if existing.ID != id {
			continue
		}

		changed, err := mutate(existing)
		if err != nil {
			return err
		}

		if !changed {
			return nil
		}

		all[i] = existing

		return r.save(all)
	}

	return ErrNotFound
}

// Delete removes the instance with the provided id.
func (r *FileRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range all {
		if existing.ID == id {
			all = append(all[:i], all[i+1:]...)

			return r.save(all)
		}
	}

	return ErrNotFound
}

// load reads every instance from disk. A missing file is an empty store.
func (r *FileRepository) load() ([]*domain.Instance, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read instances file: %w", err)
	}

	var collection pb.InstanceCollection
	if err = protojson.Unmarshal(contents, &collection); err != nil {
		return nil, fmt.Errorf("decode instances file: %w", err)
	}

	return FromProtoCollection(&collection), nil
}

// save writes every instance to disk using JSON representation.
func (r *FileRepository) save(all []*domain.Instance) error {
	var (
		collection     = ToProtoCollection(all)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode instances: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write instances file: %w", err)
	}

	return nil
}

// FromProto converts a protobuf AlarmInstance into the domain model.
func FromProto(protoInstance *pb.AlarmInstance) *domain.Instance {
	if protoInstance == nil {
		return nil
	}

	return &domain.Instance{
		ID:        protoInstance.GetId(),
		AlarmTime: time.UnixMilli(protoInstance.GetAlarmTimeUnixMs()),
		State:     StateFromProto(protoInstance.GetState()),
	}
}

// ToProto converts the domain model into a protobuf AlarmInstance.
func ToProto(ins *domain.Instance) *pb.AlarmInstance {
	if ins == nil {
		return nil
	}

	return &pb.AlarmInstance{
		Id:              ins.ID,
		AlarmTimeUnixMs: ins.AlarmTime.UnixMilli(),
		State:           StateToProto(ins.State),
	}
}

// FromProtoCollection converts a protobuf InstanceCollection into domain instances.
func FromProtoCollection(collection *pb.InstanceCollection) []*domain.Instance {
	protoInstances := collection.GetInstances()
	if len(protoInstances) == 0 {
		return nil
	}

	result := make([]*domain.Instance, 0, len(protoInstances))
	for _, protoInstance := range protoInstances {
		result = append(result, FromProto(protoInstance))
	}

	return result
}

// ToProtoCollection converts domain instances into a protobuf InstanceCollection.
func ToProtoCollection(all []*domain.Instance) *pb.InstanceCollection {
	collection := &pb.InstanceCollection{
		Instances: make([]*pb.AlarmInstance, 0, len(all)),
	}

	for _, ins := range all {
		collection.Instances = append(collection.Instances, ToProto(ins))
	}

	return collection
}

// StateFromProto maps a protobuf state to the domain state.
// Unknown values map to Silent so a newer file does not wedge an older binary.
func StateFromProto(s pb.InstanceState) domain.State {
	switch s {
	case pb.InstanceState_INSTANCE_STATE_SILENT:
		return domain.Silent
	case pb.InstanceState_INSTANCE_STATE_LOW_NOTIFICATION:
		return domain.LowNotification
	case pb.InstanceState_INSTANCE_STATE_HIGH_NOTIFICATION:
		return domain.HighNotification
	case pb.InstanceState_INSTANCE_STATE_FIRED:
		return domain.Fired
	case pb.InstanceState_INSTANCE_STATE_SNOOZED:
		return domain.Snoozed
	case pb.InstanceState_INSTANCE_STATE_DISMISSED:
		return domain.Dismissed
	case pb.InstanceState_INSTANCE_STATE_MISSED:
		return domain.Missed
	default:
		return domain.Silent
	}
}

// StateToProto maps a domain state to the protobuf state.
func StateToProto(s domain.State) pb.InstanceState {
	switch s {
	case domain.Silent:
		return pb.InstanceState_INSTANCE_STATE_SILENT
	case domain.LowNotification:
		return pb.InstanceState_INSTANCE_STATE_LOW_NOTIFICATION
	case domain.HighNotification:
		return pb.InstanceState_INSTANCE_STATE_HIGH_NOTIFICATION
	case domain.Fired:
		return pb.InstanceState_INSTANCE_STATE_FIRED
	case domain.Snoozed:
		return pb.InstanceState_INSTANCE_STATE_SNOOZED
	case domain.Dismissed:
		return pb.InstanceState_INSTANCE_STATE_DISMISSED
	case domain.Missed:
		return pb.InstanceState_INSTANCE_STATE_MISSED
	default:
		return pb.InstanceState_INSTANCE_STATE_UNSPECIFIED
	}
}
