package version

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		name    string
		version string
		want    string
	}{
		{"sparklet-tui", "0.1.0", "sparklet-tui v0.1.0"},
		{"sparklet", "1.2.3-rc.1", "sparklet v1.2.3-rc.1"},
		{"", "", " v"},
	}
	for _, tc := range cases {
		if got := Format(tc.name, tc.version); got != tc.want {
			t.Fatalf("Format(%q, %q) = %q, want %q", tc.name, tc.version, got, tc.want)
		}
	}
}

func TestFormatDeterministic(t *testing.T) {
	first := Format("sparklet-tui", "0.1.0")
	for i := 0; i < 10; i++ {
		if got := Format("sparklet-tui", "0.1.0"); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
}

func TestIdentities(t *testing.T) {
	if got := TUI.String(); got != "sparklet-tui v0.1.0" {
		t.Fatalf("unexpected TUI identity %q", got)
	}
	if got := Library.String(); got != "sparklet v0.1.0" {
		t.Fatalf("unexpected library identity %q", got)
	}
}
