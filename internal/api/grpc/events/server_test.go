package events

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/repository/instances"
)

// fakeHandler implements EventHandler and records the last routed event.
type fakeHandler struct {
	// last holds the event from the most recent Handle call.
	last domain.TriggerEvent
	// epoch is the value returned from Handle.
	epoch uint64
	// err, when set, is returned from Handle.
	err error
}

func (f *fakeHandler) Handle(_ context.Context, event domain.TriggerEvent) (uint64, error) {
	f.last = event
	f.epoch++

	return f.epoch, f.err
}

func newTestServer(t *testing.T) (*Server, *fakeHandler, instances.Repository) {
	t.Helper()

	handler := &fakeHandler{}
	store := instances.NewFileRepository(filepath.Join(t.TempDir(), "instances.json"))

	return NewServer(handler, store), handler, store
}

// TestServer_PublishEvent_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_PublishEvent_Validation(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestServer(t)

	_, err := s.PublishEvent(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Missing event type.
	_, err = s.PublishEvent(context.Background(), &pb.PublishEventRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Status update without a status.
	_, err = s.PublishEvent(context.Background(), &pb.PublishEventRequest{
		EventType:       pb.EventType_EVENT_TYPE_EXTERNAL_STATUS_UPDATE,
		AlarmTimeUnixMs: 1000,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_PublishEvent_RoutesEvents verifies each event type reaches the
// handler as the matching domain variant with its parameters intact.
func TestServer_PublishEvent_RoutesEvents(t *testing.T) {
	t.Parallel()

	s, handler, _ := newTestServer(t)

	resp, err := s.PublishEvent(context.Background(), &pb.PublishEventRequest{
		EventType: pb.EventType_EVENT_TYPE_BOOT_COMPLETED,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.GetEpoch())
	require.IsType(t, domain.BootCompleted{}, handler.last)

	resp, err = s.PublishEvent(context.Background(), &pb.PublishEventRequest{
		EventType:        pb.EventType_EVENT_TYPE_EXTERNAL_STATUS_UPDATE,
		AlarmTimeUnixMs:  1000,
		Status:           pb.ExternalStatus_EXTERNAL_STATUS_SNOOZE,
		SnoozeTimeUnixMs: 2000,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), resp.GetEpoch())

	update, ok := handler.last.(domain.ExternalStatusUpdate)
	require.True(t, ok)
	require.Equal(t, int64(1000), update.AlarmTime.UnixMilli())
	require.Equal(t, domain.StatusSnooze, update.Status)
	require.Equal(t, int64(2000), update.SnoozeTime.UnixMilli())
}

// TestServer_ScheduleListUnschedule exercises the instance lifecycle over
// the transport surface.
func TestServer_ScheduleListUnschedule(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestServer(t)

	// Validation first.
	_, err := s.ScheduleInstance(context.Background(), &pb.ScheduleInstanceRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.UnscheduleInstance(context.Background(), &pb.UnscheduleInstanceRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	created, err := s.ScheduleInstance(context.Background(), &pb.ScheduleInstanceRequest{
		Instance: &pb.AlarmInstance{
			Id:              1,
			AlarmTimeUnixMs: time.Now().Add(time.Hour).UnixMilli(),
			State:           pb.InstanceState_INSTANCE_STATE_SILENT,
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.GetInstance().GetId())

	listed, err := s.ListInstances(context.Background(), &pb.ListInstancesRequest{})
	require.NoError(t, err)
	require.Len(t, listed.GetInstances(), 1)

	// State filter excludes the instance.
	listed, err = s.ListInstances(context.Background(), &pb.ListInstancesRequest{
		States: []pb.InstanceState{pb.InstanceState_INSTANCE_STATE_FIRED},
	})
	require.NoError(t, err)
	require.Empty(t, listed.GetInstances())

	_, err = s.UnscheduleInstance(context.Background(), &pb.UnscheduleInstanceRequest{Id: 1})
	require.NoError(t, err)

	_, err = s.UnscheduleInstance(context.Background(), &pb.UnscheduleInstanceRequest{Id: 1})
	require.Equal(t, codes.NotFound, status.Code(err))
}
