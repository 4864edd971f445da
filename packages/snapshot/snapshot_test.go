package snapshot

import (
	"os"
	"testing"
)

func TestManager_Compare_NewSnapshot(t *testing.T) {
	tmpDir := t.TempDir()

	manager := NewManager(tmpDir, true) // Update mode enabled

	result := manager.Compare("expanded", []byte("tx := tx.Clone()\n"))

	if !result.Passed {
		t.Errorf("expected passed to be true, got false: %s", result.Message)
	}
	if !result.IsNew {
		t.Error("expected IsNew to be true")
	}

	// Verify snapshot file was created
	if _, err := os.Stat(manager.Path("expanded")); os.IsNotExist(err) {
		t.Error("expected snapshot file to be created")
	}
}

func TestManager_Compare_ExistingSnapshot_Match(t *testing.T) {
	tmpDir := t.TempDir()
	data := []byte("counter := counter.Clone() // mut\n")

	manager := NewManager(tmpDir, true)
	result := manager.Compare("mut", data)
	if !result.Passed || !result.IsNew {
		t.Fatal("failed to create initial snapshot")
	}

	// Compare with same data, update mode disabled
	manager2 := NewManager(tmpDir, false)
	result = manager2.Compare("mut", data)

	if !result.Passed {
		t.Errorf("expected match, got: %s", result.Message)
	}
	if result.WasUpdated {
		t.Error("expected WasUpdated to be false")
	}
}

func TestManager_Compare_ExistingSnapshot_Mismatch(t *testing.T) {
	tmpDir := t.TempDir()

	manager := NewManager(tmpDir, true)
	if result := manager.Compare("drift", []byte("a\nb\nc\n")); !result.Passed {
		t.Fatal("failed to create initial snapshot")
	}

	manager2 := NewManager(tmpDir, false)
	result := manager2.Compare("drift", []byte("a\nX\nc\n"))

	if result.Passed {
		t.Error("expected mismatch to fail")
	}
	if result.Message != "snapshot mismatch (first difference at line 2)" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestManager_Compare_MissingWithoutUpdate(t *testing.T) {
	manager := NewManager(t.TempDir(), false)

	result := manager.Compare("never-written", []byte("x"))

	if result.Passed {
		t.Error("expected missing snapshot to fail outside update mode")
	}
}

func TestManager_Compare_UpdateRewrites(t *testing.T) {
	tmpDir := t.TempDir()

	manager := NewManager(tmpDir, true)
	manager.Compare("rewrite", []byte("old\n"))
	result := manager.Compare("rewrite", []byte("new\n"))

	if !result.Passed || !result.WasUpdated {
		t.Errorf("expected snapshot update, got: %+v", result)
	}

	data, err := os.ReadFile(manager.Path("rewrite"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("snapshot not rewritten, got %q", data)
	}
}
