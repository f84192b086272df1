//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/alarm-clockd/internal/config"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
)

// Client wraps the gRPC SystemEventService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the event daemon.
	conn *grpc.ClientConn
	// api is the generated SystemEventService client interface.
	api pb.SystemEventServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errInstanceRequired is returned when an instance is not provided but is required for the operation.
	errInstanceRequired = errors.New("instance must be provided")
)

// Dial establishes a gRPC connection to the event daemon.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial event daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewSystemEventServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// PublishEvent delivers a trigger event and returns its assigned epoch.
func (c *Client) PublishEvent(ctx context.Context, request *pb.PublishEventRequest) (*pb.PublishEventResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.PublishEvent(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}

	return response, nil
}

// ListInstances retrieves instances, optionally filtered by state.
func (c *Client) ListInstances(ctx context.Context, states ...pb.InstanceState) (*pb.ListInstancesResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ListInstances(callCtx, &pb.ListInstancesRequest{States: states})
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}

	return response, nil
}

// ScheduleInstance creates or replaces an alarm instance.
func (c *Client) ScheduleInstance(ctx context.Context, instance *pb.AlarmInstance) (*pb.ScheduleInstanceResponse, error) {
	if instance == nil {
		return nil, errInstanceRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ScheduleInstance(callCtx, &pb.ScheduleInstanceRequest{Instance: instance})
	if err != nil {
		return nil, fmt.Errorf("schedule instance: %w", err)
	}

	return response, nil
}

// UnscheduleInstance deletes an alarm instance by id.
func (c *Client) UnscheduleInstance(ctx context.Context, id int64) (*pb.UnscheduleInstanceResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.UnscheduleInstance(callCtx, &pb.UnscheduleInstanceRequest{Id: id})
	if err != nil {
		return nil, fmt.Errorf("unschedule instance: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
