package core

import "testing"

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionNone, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsDirection(); got != tc.expected {
				t.Errorf("%v.IsDirection() = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}
}

func TestActionStringUnknown(t *testing.T) {
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
