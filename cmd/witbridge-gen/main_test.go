package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestRunWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gen")
	if err := run("service", "baseruntime", dir, zap.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"types.go", "from_wit.go", "to_wit.go", "bindings.go"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
