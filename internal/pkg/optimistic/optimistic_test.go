// internal/pkg/optimistic/optimistic_test.go
package optimistic

import (
	"context"
	"errors"
	"testing"
)

func TestRunSuccessPath(t *testing.T) {
	var order []string

	err := Run(context.Background(), Txn{
		Apply:     func() { order = append(order, "apply") },
		Remote:    func(ctx context.Context) error { order = append(order, "remote"); return nil },
		OnSuccess: func() { order = append(order, "success") },
		Rollback:  func() { order = append(order, "rollback") },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"apply", "remote", "success"}
	if len(order) != len(want) {
		t.Fatalf("unexpected call order: %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected call order: %v", order)
		}
	}
}

func TestRunRollsBackOnFailure(t *testing.T) {
	remoteErr := errors.New("backend unavailable")
	applied := false
	rolledBack := false

	err := Run(context.Background(), Txn{
		Apply:     func() { applied = true },
		Remote:    func(ctx context.Context) error { return remoteErr },
		OnSuccess: func() { t.Fatal("OnSuccess must not run on failure") },
		Rollback:  func() { rolledBack = true },
	})

	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error returned, got %v", err)
	}
	if !applied || !rolledBack {
		t.Fatalf("expected apply then rollback, got applied=%v rolledBack=%v", applied, rolledBack)
	}
}

func TestRunOptionalHooks(t *testing.T) {
	// Only Remote is required; nil hooks must not panic.
	err := Run(context.Background(), Txn{
		Remote: func(ctx context.Context) error { return errors.New("declined") },
	})
	if err == nil {
		t.Fatal("expected error surfaced")
	}

	err = Run(context.Background(), Txn{
		Remote: func(ctx context.Context) error { return nil },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
