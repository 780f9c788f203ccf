package core

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in       string
		expected Mode
		wantErr  bool
	}{
		{"", ModeDefault, false},
		{"default", ModeDefault, false},
		{"solo", ModeSolo, false},
		{"ai", ModeSolo, false},
		{"versus", ModeVersus, false},
		{"2p", ModeVersus, false},
		{"coop", ModeDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseMode(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestModeToggle(t *testing.T) {
	if ModeSolo.Toggle() != ModeVersus {
		t.Error("solo should toggle to versus")
	}
	if ModeVersus.Toggle() != ModeSolo {
		t.Error("versus should toggle to solo")
	}
	if ModeDefault.Toggle() != ModeVersus {
		t.Error("default should toggle to versus")
	}
}

func TestEventString(t *testing.T) {
	if EventGameOver.String() != "gameover" {
		t.Errorf("EventGameOver = %q", EventGameOver.String())
	}
	if Event(99).String() != "none" {
		t.Errorf("out of range event = %q", Event(99).String())
	}
}
