package uartlog

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestModuleOutputFormat(t *testing.T) {
	l, tr := newTestLogger(t, Config{})
	radio := l.RegisterModule("radio", LevelDebug)

	_, _, line, _ := runtime.Caller(0)
	radio.Warningf("weak signal %ddBm", -81) // must stay on the line after the Caller probe

	want := fmt.Sprintf("\x1B[33m[WRN][radio][TestModuleOutputFormat:%d]: \x1B[0mweak signal -81dBm", line+1)
	if len(tr.frames) != 1 {
		t.Fatalf("Expected 1 frame, got %d", len(tr.frames))
	}
	if got := string(tr.frames[0]); got != want {
		t.Errorf("Frame mismatch:\n got  %q\n want %q", got, want)
	}
}

func TestModuleIndependentThresholds(t *testing.T) {
	l, tr := newTestLogger(t, Config{})
	radio := l.RegisterModule("radio", LevelDebug)
	sensor := l.RegisterModule("sensor", LevelDebug)

	// Disabling radio must not affect sensor.
	radio.SetLevel(LevelOff)
	radio.Debugf("r")
	radio.Errorf("r")
	sensor.Infof("s")

	if len(tr.frames) != 1 {
		t.Fatalf("Expected only the sensor frame, got %d: %q", len(tr.frames), tr.frames)
	}
	if !strings.Contains(string(tr.frames[0]), "[sensor]") {
		t.Errorf("Expected [sensor] prefix, got %q", tr.frames[0])
	}

	// Re-enabling radio restores emission for all four severities.
	tr.frames = nil
	radio.SetLevel(LevelDebug)
	radio.Debugf("1")
	radio.Infof("2")
	radio.Warningf("3")
	radio.Errorf("4")
	if len(tr.frames) != 4 {
		t.Errorf("Expected 4 frames after re-enabling, got %d", len(tr.frames))
	}
}

func TestModuleIgnoresGlobalThreshold(t *testing.T) {
	// Module-scoped logging consults the module level only.
	l, tr := newTestLogger(t, Config{Level: LevelError})
	radio := l.RegisterModule("radio", LevelDebug)

	radio.Debugf("still audible")
	if len(tr.frames) != 1 {
		t.Fatalf("Expected module DEBUG to pass despite global ERROR threshold, got %d frames", len(tr.frames))
	}

	// And the other way around: a disabled module stays silent even with
	// a permissive global threshold.
	tr.frames = nil
	if err := l.SetLevel(LevelDebug); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	radio.SetLevel(LevelOff)
	radio.Errorf("silenced")
	if len(tr.frames) != 0 {
		t.Errorf("Expected disabled module to stay silent, got %q", tr.frames)
	}
}

func TestModuleSetLevelUnchecked(t *testing.T) {
	l, _ := newTestLogger(t, Config{})
	m := l.RegisterModule("radio", LevelInfo)

	// The module setter accepts OFF and any real level without validation.
	for _, lvl := range []Level{LevelOff, LevelDebug, LevelError, Level(7)} {
		m.SetLevel(lvl)
		if m.Level() != lvl {
			t.Errorf("Expected module level %d, got %d", lvl, m.Level())
		}
	}
}

func TestModuleSetLevelNilHandle(t *testing.T) {
	var m *Module
	// Must not panic; a nil handle means there is nothing to adjust.
	m.SetLevel(LevelOff)
}

func TestDeclareModule(t *testing.T) {
	l, _ := newTestLogger(t, Config{})
	registered := l.RegisterModule("radio", LevelDebug)

	declared := l.DeclareModule("radio")
	if declared != registered {
		t.Error("DeclareModule should return the registered handle")
	}

	if l.DeclareModule("nonexistent") != nil {
		t.Error("DeclareModule of an unknown name should return nil")
	}

	// Adjusting through a declared handle affects the shared instance.
	declared.SetLevel(LevelOff)
	if registered.Level() != LevelOff {
		t.Errorf("Expected shared level OFF, got %s", registered.Level())
	}
}

func TestModuleName(t *testing.T) {
	l, _ := newTestLogger(t, Config{})
	m := l.RegisterModule("radio", LevelDebug)
	if m.Name() != "radio" {
		t.Errorf("Expected name %q, got %q", "radio", m.Name())
	}
}
