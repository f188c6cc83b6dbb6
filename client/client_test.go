package client

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/make87/ros-minimal-client/srv"
)

type fakeCaller struct {
	readyAfter int
	probes     int

	failFirst int
	callErr   error
	calls     int

	shutdowns int
}

func (f *fakeCaller) Ready() bool {
	f.probes++
	return f.probes > f.readyAfter
}

func (f *fakeCaller) Call(s *srv.AddTwoInts) error {
	f.calls++
	if f.callErr != nil {
		return f.callErr
	}
	if f.calls <= f.failFirst {
		return errors.New("transient")
	}
	s.Response.Sum = s.Request.A + s.Request.B
	return nil
}

func (f *fakeCaller) Shutdown() {
	f.shutdowns++
}

func TestWaitReady(t *testing.T) {
	fake := &fakeCaller{readyAfter: 2}
	c := New(fake, 1)

	if err := c.WaitReady(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("WaitReady error: %v", err)
	}
	if fake.probes != 3 {
		t.Errorf("expected 3 probes, got %d", fake.probes)
	}
}

func TestWaitReadyInterrupted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	fake := &fakeCaller{readyAfter: 1 << 30}
	c := New(fake, 1)

	err := c.WaitReady(ctx, time.Millisecond)
	if err == nil {
		t.Fatal("expected interruption error")
	}
	if !strings.Contains(err.Error(), "interrupted while waiting") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAddTwoInts(t *testing.T) {
	fake := &fakeCaller{}
	c := New(fake, 1)

	sum, err := c.AddTwoInts(context.Background(), 41, 1)
	if err != nil {
		t.Fatalf("AddTwoInts error: %v", err)
	}
	if sum != 42 {
		t.Errorf("expected sum 42, got %d", sum)
	}
	if fake.calls != 1 {
		t.Errorf("expected a single call, got %d", fake.calls)
	}
}

func TestAddTwoIntsFailure(t *testing.T) {
	fake := &fakeCaller{callErr: errors.New("service gone")}
	c := New(fake, 1)

	_, err := c.AddTwoInts(context.Background(), 41, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "service call failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("expected a single attempt by default, got %d", fake.calls)
	}
}

func TestAddTwoIntsRetriesWhenConfigured(t *testing.T) {
	fake := &fakeCaller{failFirst: 2}
	c := New(fake, 3)

	sum, err := c.AddTwoInts(context.Background(), 20, 22)
	if err != nil {
		t.Fatalf("AddTwoInts error: %v", err)
	}
	if sum != 42 {
		t.Errorf("expected sum 42, got %d", sum)
	}
	if fake.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", fake.calls)
	}
}

func TestShutdownReleasesCaller(t *testing.T) {
	fake := &fakeCaller{}
	c := New(fake, 1)
	c.Shutdown()
	if fake.shutdowns != 1 {
		t.Errorf("expected one shutdown, got %d", fake.shutdowns)
	}
}
