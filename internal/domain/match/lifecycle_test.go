package match

import (
	"errors"
	"testing"
)

func TestTransition_AllowedMoves(t *testing.T) {
	cases := []struct {
		from, to Status
	}{
		{StatusPending, StatusAccepted},
		{StatusPending, StatusRejected},
		{StatusAccepted, StatusCompleted},
	}
	for _, tc := range cases {
		changed, err := Transition(tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !changed {
			t.Fatalf("%s -> %s: expected changed=true", tc.from, tc.to)
		}
	}
}

func TestTransition_SameStateIsIdempotentNoop(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAccepted, StatusRejected, StatusCompleted} {
		changed, err := Transition(s, s)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", s, s, err)
		}
		if changed {
			t.Fatalf("%s -> %s: replay must not report a change", s, s)
		}
	}
}

func TestTransition_IllegalMoves(t *testing.T) {
	cases := []struct {
		from, to Status
	}{
		{StatusAccepted, StatusRejected}, // acceptance is final
		{StatusAccepted, StatusPending},
		{StatusRejected, StatusAccepted},
		{StatusRejected, StatusPending},
		{StatusRejected, StatusCompleted},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusAccepted},
		{StatusCompleted, StatusRejected},
		{StatusPending, StatusCompleted},
	}
	for _, tc := range cases {
		changed, err := Transition(tc.from, tc.to)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
		if changed {
			t.Fatalf("%s -> %s: illegal move must not report a change", tc.from, tc.to)
		}
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	if _, err := Transition(Status("limbo"), StatusAccepted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unknown current status should be rejected, got %v", err)
	}
	if _, err := Transition(StatusPending, Status("limbo")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unknown target status should be rejected, got %v", err)
	}
}

func TestStatus_Terminal(t *testing.T) {
	if !StatusRejected.Terminal() || !StatusCompleted.Terminal() {
		t.Fatalf("rejected and completed are terminal")
	}
	if StatusPending.Terminal() || StatusAccepted.Terminal() {
		t.Fatalf("pending and accepted are not terminal")
	}
}
