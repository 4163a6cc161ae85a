// internal/pkg/optimistic/optimistic.go
package optimistic

import "context"

// Txn describes one optimistic mutation: apply the local change first, then
// confirm it remotely, and undo it if the remote call fails. Every mutating
// cart and wishlist operation is an instantiation of this template, so no
// call site can forget its rollback half.
type Txn struct {
	// Apply performs the optimistic local mutation. Runs synchronously
	// before the remote call is issued.
	Apply func()
	// Remote issues the corresponding backend call.
	Remote func(ctx context.Context) error
	// OnSuccess runs after the remote call succeeds. Optional.
	OnSuccess func()
	// Rollback reverts the optimistic mutation after a remote failure.
	// Optional for operations that reconcile by refetching instead.
	Rollback func()
}

// Run executes the transaction and returns the remote error, if any
func Run(ctx context.Context, t Txn) error {
	if t.Apply != nil {
		t.Apply()
	}

	if err := t.Remote(ctx); err != nil {
		if t.Rollback != nil {
			t.Rollback()
		}
		return err
	}

	if t.OnSuccess != nil {
		t.OnSuccess()
	}
	return nil
}
