package resource

import "testing"

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		name        string
		from        State
		op          Op
		wantState   State
		wantDeleted bool
		wantErr     bool
	}{
		{"created start", StateCreated, OpStart, StateStarted, false, false},
		{"created stop", StateCreated, OpStop, StateCreated, false, true},
		{"created delete", StateCreated, OpDelete, StateDeleted, true, false},
		{"started start", StateStarted, OpStart, StateStarted, false, true},
		{"started stop", StateStarted, OpStop, StateStopped, false, false},
		{"started delete", StateStarted, OpDelete, StateStarted, false, true},
		{"stopped start", StateStopped, OpStart, StateStarted, false, false},
		{"stopped stop", StateStopped, OpStop, StateStopped, false, true},
		{"stopped delete", StateStopped, OpDelete, StateDeleted, true, false},
		{"deleted start", StateDeleted, OpStart, StateDeleted, true, true},
		{"deleted stop", StateDeleted, OpStop, StateDeleted, true, true},
		{"deleted delete", StateDeleted, OpDelete, StateDeleted, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, deleted, err := Transition(tt.from, tt.op)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %s/%s, got none", tt.from, tt.op)
				}
				if !IsInvalidTransition(err) {
					t.Errorf("Expected INVALID_TRANSITION, got: %v", err)
				}
				// Failed transitions must not move the state.
				if next != tt.from {
					t.Errorf("Expected state unchanged (%s), got %s", tt.from, next)
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if next != tt.wantState {
				t.Errorf("Expected state %s, got %s", tt.wantState, next)
			}
			if deleted != tt.wantDeleted {
				t.Errorf("Expected deleted=%v, got %v", tt.wantDeleted, deleted)
			}
		})
	}
}

func TestTransition_ErrorContext(t *testing.T) {
	_, _, err := Transition(StateStarted, OpDelete)
	if err == nil {
		t.Fatal("Expected error, got none")
	}

	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if e.State != string(StateStarted) {
		t.Errorf("Expected state context %q, got %q", StateStarted, e.State)
	}
	if e.Operation != string(OpDelete) {
		t.Errorf("Expected operation context %q, got %q", OpDelete, e.Operation)
	}
	if e.Message == "" {
		t.Error("Expected a reason message")
	}
}

func TestTransition_DeletedIsAbsorbing(t *testing.T) {
	for _, op := range []Op{OpStart, OpStop, OpDelete} {
		next, deleted, err := Transition(StateDeleted, op)
		if err == nil {
			t.Errorf("Expected error for %s on Deleted, got none", op)
		}
		if next != StateDeleted || !deleted {
			t.Errorf("Deleted must stay terminal for %s, got state=%s deleted=%v", op, next, deleted)
		}
	}
}

func TestTransition_RejectionIsIdempotent(t *testing.T) {
	_, _, err1 := Transition(StateStarted, OpStart)
	_, _, err2 := Transition(StateStarted, OpStart)

	if err1 == nil || err2 == nil {
		t.Fatal("Expected both attempts to fail")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("Expected identical failures, got %q and %q", err1, err2)
	}
}

func TestState_Valid(t *testing.T) {
	for _, s := range []State{StateCreated, StateStarted, StateStopped, StateDeleted} {
		if !s.Valid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if State("Provisioning").Valid() {
		t.Error("Expected unknown state to be invalid")
	}
}

func TestState_IsTerminal(t *testing.T) {
	if !StateDeleted.IsTerminal() {
		t.Error("Expected Deleted to be terminal")
	}
	for _, s := range []State{StateCreated, StateStarted, StateStopped} {
		if s.IsTerminal() {
			t.Errorf("Expected %s to be non-terminal", s)
		}
	}
}

func TestTransitionMessage_RegionFallback(t *testing.T) {
	msg := transitionMessage(StateCreated, OpStart, map[string]any{})
	if msg != "started in unknown region" {
		t.Errorf("Expected placeholder region, got %q", msg)
	}

	msg = transitionMessage(StateStopped, OpStart, map[string]any{"region": "WestEurope"})
	if msg != "restarted in WestEurope" {
		t.Errorf("Expected region from config, got %q", msg)
	}
}
