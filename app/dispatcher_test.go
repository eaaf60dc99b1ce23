package app

import (
	"errors"
	"testing"
	"time"

	"github.com/fatihtuzcu28/chess/app/models"
)

func waitOutcome(t *testing.T, ch <-chan Outcome) Outcome {
	t.Helper()
	select {
	case out := <-ch:
		return out
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for outcome")
		return Outcome{}
	}
}

func TestDispatcherDeliversOutcome(t *testing.T) {
	d := NewDispatcher()
	defer d.Shutdown()

	ch, err := d.Submit("R6k/8/5K2/8/8/8/8/8 b - - 0 1", 1)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	out := waitOutcome(t, ch)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Move == nil || out.Move.From != "h8" || out.Move.To != "h7" {
		t.Fatalf("expected h8h7, got %+v", out.Move)
	}
	if out.Depth != 1 {
		t.Fatalf("expected depth 1, got %d", out.Depth)
	}
}

func TestDispatcherNoLegalMoves(t *testing.T) {
	d := NewDispatcher()
	defer d.Shutdown()

	ch, err := d.Submit("R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1", 2)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	out := waitOutcome(t, ch)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Move != nil {
		t.Fatalf("expected nil move for a mated position, got %+v", out.Move)
	}
}

func TestDispatcherInvalidPosition(t *testing.T) {
	d := NewDispatcher()
	defer d.Shutdown()

	ch, err := d.Submit("not a fen", 2)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	out := waitOutcome(t, ch)
	if !errors.Is(out.Err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", out.Err)
	}
}

func TestDispatcherRejectsBadDepth(t *testing.T) {
	d := NewDispatcher()
	defer d.Shutdown()

	for _, depth := range []int{0, -1} {
		if _, err := d.Submit(startFEN, depth); err == nil {
			t.Fatalf("expected error for depth %d", depth)
		}
	}
}

func TestDispatcherRejectsWhileBusy(t *testing.T) {
	release := make(chan struct{})
	d := NewDispatcher()
	d.run = func(fen string, depth int) Outcome {
		<-release
		return Outcome{Move: &models.MoveReply{From: "e2", To: "e4"}, Depth: depth}
	}
	defer d.Shutdown()

	ch, err := d.Submit(startFEN, 2)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	if _, err := d.Submit(startFEN, 2); !errors.Is(err, ErrEngineBusy) {
		t.Fatalf("expected ErrEngineBusy, got %v", err)
	}

	close(release)
	if out := waitOutcome(t, ch); out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}

	// Once the outcome is delivered the slot is free again.
	ch, err = d.Submit(startFEN, 2)
	if err != nil {
		t.Fatalf("submit after release failed: %v", err)
	}
	waitOutcome(t, ch)
}

func TestDispatcherRecoversFromPanic(t *testing.T) {
	d := NewDispatcher()
	d.run = func(fen string, depth int) Outcome {
		panic("boom")
	}
	defer d.Shutdown()

	ch, err := d.Submit(startFEN, 2)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	out := waitOutcome(t, ch)
	if out.Err == nil {
		t.Fatalf("expected an error from a panicking search")
	}
	if out.Move != nil {
		t.Fatalf("a failed search must not return a move, got %+v", out.Move)
	}

	// The worker survives and serves the next request.
	d.run = nil
	ch, err = d.Submit("R6k/8/5K2/8/8/8/8/8 b - - 0 1", 1)
	if err != nil {
		t.Fatalf("submit after panic failed: %v", err)
	}
	if out := waitOutcome(t, ch); out.Err != nil || out.Move == nil {
		t.Fatalf("expected a move after recovery, got %+v", out)
	}
}

func TestDispatcherShutdownDeliversQueuedOutcome(t *testing.T) {
	// Shutdown can race the worker for a job the worker has not picked up
	// yet; whoever wins, the submitter must still get exactly one outcome
	// and the slot must free up.
	for i := 0; i < 50; i++ {
		d := NewDispatcher()
		d.run = func(fen string, depth int) Outcome {
			return Outcome{Move: &models.MoveReply{From: "e2", To: "e4"}, Depth: depth}
		}

		ch, err := d.Submit(startFEN, 2)
		if err != nil {
			t.Fatalf("iteration %d: submit failed: %v", i, err)
		}
		d.Shutdown()

		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("iteration %d: no outcome delivered after shutdown", i)
		}

		ch, err = d.Submit(startFEN, 2)
		if err != nil {
			t.Fatalf("iteration %d: submit after shutdown failed: %v", i, err)
		}
		waitOutcome(t, ch)
		d.Shutdown()
	}
}

func TestDispatcherShutdownAndRestart(t *testing.T) {
	d := NewDispatcher()

	ch, err := d.Submit("R6k/8/5K2/8/8/8/8/8 b - - 0 1", 1)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	waitOutcome(t, ch)

	d.Shutdown()
	d.Shutdown() // second shutdown is a no-op

	// The next submission recreates the worker.
	ch, err = d.Submit("R6k/8/5K2/8/8/8/8/8 b - - 0 1", 1)
	if err != nil {
		t.Fatalf("submit after shutdown failed: %v", err)
	}
	if out := waitOutcome(t, ch); out.Move == nil {
		t.Fatalf("expected a move after restart, got %+v", out)
	}
	d.Shutdown()
}
