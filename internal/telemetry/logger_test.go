package telemetry

import "testing"

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := Nop()
	l.Stall("phase1", 3, "no admissible move")
	l.Rejected("phase2", 4, []uint64{1, 2}, "connectivity break")
	l.PhaseAdvanced("phase1", "phase2", 5)
	l.Debugf("tick %d", 5)
	if err := l.Sync(); err != nil {
		// zap's Nop sync can return an error on some platforms (stderr sync
		// on certain terminals); that is not a test failure here.
		t.Logf("Sync() returned %v", err)
	}
}

func TestNewBuildsUsableLogger(t *testing.T) {
	l, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Stall("phase1", 0, "startup")
}
