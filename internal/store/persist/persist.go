// Package persist handles the store's on-disk lifecycle (§4.6
// persistence): writing meta.json and state.json atomically (temp file then
// rename, grounded on the teacher's saveManifestToFile pattern in
// internal/mcp), and loading them back on startup.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Meta describes one persisted index's static shape: when it was built,
// how many files/symbols it holds, and the vector dimension in use (if
// any), the fields HotReloadPoller watches for freshness.
type Meta struct {
	BuiltAt       time.Time `json:"built_at"`
	FileCount     int       `json:"file_count"`
	SymbolCount   int       `json:"symbol_count"`
	VectorDim     int       `json:"vector_dimension,omitempty"`
	SchemaVersion int       `json:"schema_version"`
}

// State describes the mutable progress of an in-flight or completed index
// run; the watcher polls this file's ModTime the same way it polls meta.json
// (§4.7 HotReloadPoller).
type State struct {
	LastRunAt    time.Time `json:"last_run_at"`
	FilesIndexed int       `json:"files_indexed"`
	FilesFailed  int       `json:"files_failed"`
	InProgress   bool      `json:"in_progress"`
}

// WriteAtomic marshals v as indented JSON and writes it to path via a
// temp-file-then-rename so a concurrent reader (or the hot-reload poller)
// never observes a partially written file.
func WriteAtomic(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("persist: create directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: marshal: %w", err)
	}
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("persist: write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("persist: rename temp file: %w", err)
	}
	return nil
}

// ReadJSON reads and unmarshals path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// MetaPath and StatePath are the two well-known filenames inside an index
// directory that WriteAtomic/ReadJSON and the watcher both operate on.
func MetaPath(indexDir string) string  { return filepath.Join(indexDir, "tantivy", "meta.json") }
func StatePath(indexDir string) string { return filepath.Join(indexDir, "documents", "state.json") }

// WriteMeta atomically writes meta to its well-known path under indexDir.
func WriteMeta(indexDir string, meta Meta) error {
	return WriteAtomic(MetaPath(indexDir), meta)
}

// WriteState atomically writes state to its well-known path under indexDir.
func WriteState(indexDir string, state State) error {
	return WriteAtomic(StatePath(indexDir), state)
}

// ReadMeta loads meta.json from indexDir.
func ReadMeta(indexDir string) (Meta, error) {
	var m Meta
	err := ReadJSON(MetaPath(indexDir), &m)
	return m, err
}

// ReadState loads state.json from indexDir.
func ReadState(indexDir string) (State, error) {
	var s State
	err := ReadJSON(StatePath(indexDir), &s)
	return s, err
}
