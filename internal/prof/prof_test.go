package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"sheetnav/internal/prof"
)

func TestSessionWritesFiles(t *testing.T) {
	dir := t.TempDir()
	paths := prof.Paths{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "run.trace"),
	}
	s, err := prof.Start(paths)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
	for _, p := range []string{paths.CPU, paths.Mem, paths.Trace} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s: %v", p, err)
		}
	}
}

func TestZeroSession(t *testing.T) {
	s, err := prof.Start(prof.Paths{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Error(err)
	}
}

func TestStartBadPath(t *testing.T) {
	if _, err := prof.Start(prof.Paths{CPU: filepath.Join(t.TempDir(), "missing", "cpu.pprof")}); err == nil {
		t.Error("Start succeeded with an unwritable path")
	}
}
