// internal/pkg/opstate/opstate_test.go
package opstate

import (
	"errors"
	"testing"
)

func TestBeginDone(t *testing.T) {
	tr := NewTracker()

	done := tr.Begin(OpAdd)
	if !tr.Pending(OpAdd) {
		t.Fatal("expected add to be pending")
	}
	if tr.Pending(OpRemove) {
		t.Fatal("expected other kinds untouched")
	}

	done(nil)
	if tr.Pending(OpAdd) {
		t.Fatal("expected add to clear after completion")
	}
	if tr.LastError(OpAdd) != nil {
		t.Fatal("expected nil outcome recorded")
	}
}

func TestDoneIsIdempotent(t *testing.T) {
	tr := NewTracker()

	first := tr.Begin(OpUpdate)
	second := tr.Begin(OpUpdate)

	first(nil)
	first(nil) // second call must not decrement again
	if !tr.Pending(OpUpdate) {
		t.Fatal("expected overlapping operation still pending")
	}

	second(errors.New("timeout"))
	if tr.Pending(OpUpdate) {
		t.Fatal("expected pending cleared once both complete")
	}
	if err := tr.LastError(OpUpdate); err == nil || err.Error() != "timeout" {
		t.Fatalf("expected last error recorded, got %v", err)
	}
}

func TestLastErrorResetBySuccess(t *testing.T) {
	tr := NewTracker()

	tr.Begin(OpDiscount)(errors.New("invalid code"))
	if tr.LastError(OpDiscount) == nil {
		t.Fatal("expected failure recorded")
	}

	tr.Begin(OpDiscount)(nil)
	if tr.LastError(OpDiscount) != nil {
		t.Fatal("expected success to clear the last error")
	}
}

func TestSnapshot(t *testing.T) {
	tr := NewTracker()

	done := tr.Begin(OpMerge)
	tr.Begin(OpToggle)(errors.New("conflict"))

	snap := tr.Snapshot()
	if !snap[OpMerge].Pending {
		t.Fatal("expected merge pending in snapshot")
	}
	if snap[OpToggle].Pending {
		t.Fatal("expected toggle settled in snapshot")
	}
	if snap[OpToggle].Error != "conflict" {
		t.Fatalf("expected toggle error surfaced, got %q", snap[OpToggle].Error)
	}

	done(nil)
}
