// internal/pkg/faults/faults_test.go
package faults

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if KindOf(Validationf("size is required")) != Validation {
		t.Fatal("expected validation kind")
	}
	if KindOf(AuthRequiredf("login required")) != AuthRequired {
		t.Fatal("expected auth-required kind")
	}
	if KindOf(NotFoundf("item %s not in cart", "srv-1")) != NotFound {
		t.Fatal("expected not-found kind")
	}
	if KindOf(errors.New("plain")) != Remote {
		t.Fatal("expected plain errors to classify as remote")
	}
}

func TestKindOfWrapped(t *testing.T) {
	inner := Remotef(errors.New("connection refused"), "add item failed")
	wrapped := fmt.Errorf("cart sync: %w", inner)

	if KindOf(wrapped) != Remote {
		t.Fatal("expected kind to survive wrapping")
	}
	if !errors.Is(wrapped, inner) {
		t.Fatal("expected errors.Is to see through the wrap")
	}
}

func TestRemotefUnwraps(t *testing.T) {
	cause := errors.New("backend returned status 502")
	err := Remotef(cause, "remove item failed")

	if !errors.Is(err, cause) {
		t.Fatal("expected cause reachable via Unwrap")
	}
	if err.Error() != "remove item failed: backend returned status 502" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestIs(t *testing.T) {
	if !Is(Validationf("bad input"), Validation) {
		t.Fatal("expected match")
	}
	if Is(nil, Validation) {
		t.Fatal("nil error must not match any kind")
	}
}
