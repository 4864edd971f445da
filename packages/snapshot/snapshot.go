// Package snapshot stores golden copies of expanded source for comparison
// in tests. Snapshots live in a __snapshots__ directory next to the fixture
// they belong to and are updated by running tests with -update.
package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// SnapshotDir is the directory name for storing snapshots
	SnapshotDir = "__snapshots__"
	// SnapshotExt is the file extension for snapshot files
	SnapshotExt = ".golden"
)

// Manager handles snapshot storage and comparison.
type Manager struct {
	baseDir    string
	updateMode bool
}

// NewManager creates a new snapshot manager rooted at baseDir.
func NewManager(baseDir string, updateMode bool) *Manager {
	return &Manager{
		baseDir:    baseDir,
		updateMode: updateMode,
	}
}

// Result represents the result of a snapshot comparison.
type Result struct {
	Passed     bool
	Message    string
	Expected   []byte
	Actual     []byte
	IsNew      bool
	WasUpdated bool
}

// Compare compares actual against the stored snapshot called name. In
// update mode a missing or differing snapshot is (re)written instead of
// failing.
func (m *Manager) Compare(name string, actual []byte) *Result {
	result := &Result{Actual: actual}
	path := m.Path(name)

	expected, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Message = fmt.Sprintf("failed to load snapshot: %v", err)
			return result
		}
		if !m.updateMode {
			result.Message = "snapshot does not exist (run with -update to create)"
			return result
		}
		if err := m.save(path, actual); err != nil {
			result.Message = fmt.Sprintf("failed to save snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.IsNew = true
		result.Expected = actual
		result.Message = "new snapshot created"
		return result
	}

	result.Expected = expected
	if bytes.Equal(expected, actual) {
		result.Passed = true
		return result
	}

	if m.updateMode {
		if err := m.save(path, actual); err != nil {
			result.Message = fmt.Sprintf("failed to update snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		result.Message = "snapshot updated"
		return result
	}

	result.Message = fmt.Sprintf("snapshot mismatch (first difference at line %d)", firstDiffLine(expected, actual))
	return result
}

// Path returns where the named snapshot is stored.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.baseDir, SnapshotDir, name+SnapshotExt)
}

func (m *Manager) save(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// firstDiffLine returns the 1-based line number where a and b diverge.
func firstDiffLine(a, b []byte) int {
	aLines := bytes.Split(a, []byte("\n"))
	bLines := bytes.Split(b, []byte("\n"))
	for i := 0; i < len(aLines) && i < len(bLines); i++ {
		if !bytes.Equal(aLines[i], bLines[i]) {
			return i + 1
		}
	}
	if len(aLines) < len(bLines) {
		return len(aLines) + 1
	}
	return len(bLines) + 1
}
