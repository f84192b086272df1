package events

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/repository/instances"
)

// EventHandler abstracts the event-routing surface the transport depends on.
type EventHandler interface {
	Handle(ctx context.Context, event domain.TriggerEvent) (uint64, error)
}

// Server implements the SystemEventService gRPC API.
type Server struct {
	pb.UnimplementedSystemEventServiceServer

	// handler routes published trigger events.
	handler EventHandler
	// store serves the instance listing and scheduling operations.
	store instances.Repository
}

// NewServer wires the event handler and instance store into a gRPC handler.
func NewServer(handler EventHandler, store instances.Repository) *Server {
	return &Server{
		handler: handler,
		store:   store,
	}
}

// PublishEvent delivers one trigger event and returns its assigned epoch.
func (s *Server) PublishEvent(ctx context.Context, req *pb.PublishEventRequest) (*pb.PublishEventResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	event, err := toDomainEvent(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	epoch, err := s.handler.Handle(ctx, event)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to handle event")
	}

	return &pb.PublishEventResponse{
		Epoch: epoch,
	}, nil
}

// ListInstances returns instances, optionally filtered by state.
func (s *Server) ListInstances(ctx context.Context, req *pb.ListInstancesRequest) (*pb.ListInstancesResponse, error) {
	filter := instances.Filter{}
	for _, protoState := range req.GetStates() {
		filter.States = append(filter.States, instances.StateFromProto(protoState))
	}

	all, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to list instances")
	}

	return &pb.ListInstancesResponse{
		Instances: instances.ToProtoCollection(all).GetInstances(),
	}, nil
}

// ScheduleInstance creates or replaces an alarm instance.
func (s *Server) ScheduleInstance(ctx context.Context, req *pb.ScheduleInstanceRequest) (*pb.ScheduleInstanceResponse, error) {
	if req.GetInstance() == nil {
		return nil, status.Error(codes.InvalidArgument, "instance is required")
	}

	ins := instances.FromProto(req.GetInstance())
	if ins.ID == 0 {
		return nil, status.Error(codes.InvalidArgument, "instance id is required")
	}

	if err := s.store.Create(ctx, ins); err != nil {
		return nil, status.Error(codes.Internal, "unable to persist instance")
	}

	return &pb.ScheduleInstanceResponse{
		Instance: instances.ToProto(ins),
	}, nil
}

// UnscheduleInstance deletes an alarm instance.
func (s *Server) UnscheduleInstance(ctx context.Context, req *pb.UnscheduleInstanceRequest) (*pb.UnscheduleInstanceResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "instance id is required")
	}

	if err := s.store.Delete(ctx, req.GetId()); err != nil {
		if errors.Is(err, instances.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "instance not found")
		}

		return nil, status.Error(codes.Internal, "unable to delete instance")
	}

	return &pb.UnscheduleInstanceResponse{}, nil
}

// toDomainEvent converts a publish request to the domain trigger event.
func toDomainEvent(req *pb.PublishEventRequest) (domain.TriggerEvent, error) {
	switch req.GetEventType() {
	case pb.EventType_EVENT_TYPE_BOOT_COMPLETED:
		return domain.BootCompleted{}, nil
	case pb.EventType_EVENT_TYPE_TIME_CHANGED:
		return domain.TimeChanged{}, nil
	case pb.EventType_EVENT_TYPE_LOCALE_CHANGED:
		return domain.LocaleChanged{}, nil
	case pb.EventType_EVENT_TYPE_PACKAGE_REPLACED:
		return domain.PackageReplaced{}, nil
	case pb.EventType_EVENT_TYPE_RESTORE_COMPLETED:
		return domain.RestoreCompleted{}, nil
	case pb.EventType_EVENT_TYPE_EXTERNAL_STATUS_UPDATE:
		event := domain.ExternalStatusUpdate{
			AlarmTime: time.UnixMilli(req.GetAlarmTimeUnixMs()),
		}

		switch req.GetStatus() {
		case pb.ExternalStatus_EXTERNAL_STATUS_SNOOZE:
			event.Status = domain.StatusSnooze
			event.SnoozeTime = time.UnixMilli(req.GetSnoozeTimeUnixMs())
		case pb.ExternalStatus_EXTERNAL_STATUS_DISMISS:
			event.Status = domain.StatusDismiss
		default:
			return nil, errors.New("status is required for a status update")
		}

		return event, nil
	default:
		return nil, errors.New("event type is required")
	}
}
