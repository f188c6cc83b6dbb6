// Package client drives a single AddTwoInts request/response cycle
// against a remote service, waiting for the service to appear first.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fetchrobotics/rosgo/ros"
	"github.com/google/uuid"

	"github.com/make87/ros-minimal-client/logger"
	"github.com/make87/ros-minimal-client/resilience"
	"github.com/make87/ros-minimal-client/srv"
)

// Caller is the seam over the middleware's service client. Tests swap
// in a fake; production wraps a ros.ServiceClient.
type Caller interface {
	// Ready reports whether the remote service is reachable.
	Ready() bool
	// Call performs one request/response exchange, filling in the
	// response on success.
	Call(s *srv.AddTwoInts) error
	// Shutdown releases the underlying connection.
	Shutdown()
}

type rosCaller struct {
	cli ros.ServiceClient
}

// NewCaller builds a Caller backed by the middleware, targeting the
// given service identifier.
func NewCaller(node ros.Node, service string) Caller {
	return &rosCaller{cli: node.NewServiceClient(service, srv.SrvAddTwoInts)}
}

func (c *rosCaller) Ready() bool {
	// The middleware has no wait_for_service equivalent; probe with a
	// zero-value request, which the adder answers without side effects.
	var probe srv.AddTwoInts
	return c.cli.Call(&probe) == nil
}

func (c *rosCaller) Call(s *srv.AddTwoInts) error {
	return c.cli.Call(s)
}

func (c *rosCaller) Shutdown() {
	c.cli.Shutdown()
}

// Client performs the one-shot request against a resolved endpoint.
type Client struct {
	caller Caller
	retry  *resilience.RetryConfig
	log    *logger.Logger
}

// New wraps a Caller. attempts bounds how many times the single service
// call may be tried; anything below one means exactly once.
func New(caller Caller, attempts int) *Client {
	retry := resilience.SingleAttempt()
	if attempts > 1 {
		retry.MaxAttempts = attempts
	}
	return &Client{
		caller: caller,
		retry:  retry,
		log:    logger.GetLogger().WithField("request_id", uuid.NewString()),
	}
}

// WaitReady polls the service at a fixed interval until it is reachable
// or ctx is cancelled.
func (c *Client) WaitReady(ctx context.Context, interval time.Duration) error {
	err := resilience.Poll(ctx, interval, func() bool {
		if c.caller.Ready() {
			return true
		}
		c.log.Info("waiting for service to appear...")
		return false
	})
	if err != nil {
		return fmt.Errorf("interrupted while waiting for service to appear: %w", err)
	}
	return nil
}

// AddTwoInts sends one request with the given operands and returns the
// remote sum.
func (c *Client) AddTwoInts(ctx context.Context, a, b int64) (int64, error) {
	s := srv.AddTwoInts{Request: srv.AddTwoIntsRequest{A: a, B: b}}
	err := resilience.RetryWithConfig(ctx, c.retry, func() error {
		return c.caller.Call(&s)
	})
	if err != nil {
		return 0, fmt.Errorf("service call failed: %w", err)
	}
	c.log.Debugf("service responded with sum %d", s.Response.Sum)
	return s.Response.Sum, nil
}

// Shutdown releases the underlying service client.
func (c *Client) Shutdown() {
	c.caller.Shutdown()
}
