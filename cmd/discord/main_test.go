package main

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

func TestServeWaitsForRunAfterSignal(t *testing.T) {
	var stopped atomic.Bool
	run := func(ctx context.Context) error {
		<-ctx.Done()
		// An in-flight tick finishing its save.
		time.Sleep(30 * time.Millisecond)
		stopped.Store(true)
		return nil
	}
	sig := make(chan os.Signal, 1)
	sig <- syscall.SIGTERM

	if err := serve(run, sig, time.Second); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if !stopped.Load() {
		t.Fatal("serve returned before run finished")
	}
}

func TestServeTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	run := func(context.Context) error {
		<-release
		return nil
	}
	sig := make(chan os.Signal, 1)
	sig <- syscall.SIGINT

	if err := serve(run, sig, 10*time.Millisecond); err == nil {
		t.Fatal("expected a timeout error")
	}
}

func TestServeReturnsRunError(t *testing.T) {
	boom := errors.New("session closed")
	err := serve(func(context.Context) error { return boom }, make(chan os.Signal), time.Second)
	if !errors.Is(err, boom) {
		t.Fatalf("serve = %v, want %v", err, boom)
	}
}
