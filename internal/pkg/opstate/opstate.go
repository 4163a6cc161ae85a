// internal/pkg/opstate/opstate.go
package opstate

import "sync"

// Kind identifies one class of synchronization operation. The tracker keeps
// an independent pending flag and last-error slot per kind so the UI can
// disable a single button instead of the whole page.
type Kind string

const (
	OpAdd      Kind = "add"
	OpUpdate   Kind = "update"
	OpRemove   Kind = "remove"
	OpClear    Kind = "clear"
	OpValidate Kind = "validate"
	OpMerge    Kind = "merge"
	OpDiscount Kind = "discount"
	OpToggle   Kind = "toggle"
	OpRefresh  Kind = "refresh"
)

// Status is the externally visible state of one operation kind
type Status struct {
	Pending bool   `json:"pending"`
	Error   string `json:"error,omitempty"`
}

// Tracker records per-operation-kind in-flight state
type Tracker struct {
	mu      sync.Mutex
	pending map[Kind]int
	lastErr map[Kind]error
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		pending: make(map[Kind]int),
		lastErr: make(map[Kind]error),
	}
}

// Begin marks the kind pending and returns a completion func. Calling the
// returned func records the outcome and clears the pending flag. Overlapping
// operations of the same kind are reference counted so one finishing does
// not hide another still in flight.
func (t *Tracker) Begin(kind Kind) func(error) {
	t.mu.Lock()
	t.pending[kind]++
	t.mu.Unlock()

	var once sync.Once
	return func(err error) {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if t.pending[kind] > 0 {
				t.pending[kind]--
			}
			t.lastErr[kind] = err
		})
	}
}

// Pending reports whether an operation of the given kind is in flight
func (t *Tracker) Pending(kind Kind) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending[kind] > 0
}

// LastError returns the outcome of the most recently completed operation of
// the given kind (nil on success)
func (t *Tracker) LastError(kind Kind) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr[kind]
}

// Snapshot returns the status of every kind that has been used
func (t *Tracker) Snapshot() map[Kind]Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[Kind]Status)
	for kind, count := range t.pending {
		st := out[kind]
		st.Pending = count > 0
		out[kind] = st
	}
	for kind, err := range t.lastErr {
		st := out[kind]
		if err != nil {
			st.Error = err.Error()
		}
		out[kind] = st
	}
	return out
}
