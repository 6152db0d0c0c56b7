package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// onlyFile fails the test if dir holds anything besides name.
func onlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != name {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomicReplacesReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "odds.txt")

	if err := WriteFileAtomic(path, []byte("Check/Fold (EV: $-0.10)\n"), 0o600); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("Bet/Call (EV: $3.00)\n"), 0o644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "Bet/Call (EV: $3.00)\n" {
		t.Errorf("File content mismatch: got %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0o644)
	}
	onlyFile(t, dir, "odds.txt")
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "odds.txt"), []byte("x"), 0o644)
	if err == nil {
		t.Error("Expected error when writing to non-existent directory")
	}
}

func TestWriteJSONAtomicReport(t *testing.T) {
	t.Parallel()

	type result struct {
		HighRate      float64 `json:"high_rate"`
		IterationsRun int     `json:"iterations_run"`
	}
	type report struct {
		DealID string `json:"deal_id"`
		Result result `json:"result"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	in := report{DealID: "01h455vb4pex5vsknk084sn02q", Result: result{HighRate: 0.5, IterationsRun: 120}}

	if err := WriteJSONAtomic(path, in, 0o600); err != nil {
		t.Fatalf("WriteJSONAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var out report
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}
	if out != in {
		t.Errorf("Report mismatch: got %+v, want %+v", out, in)
	}
	if data[len(data)-1] != '\n' {
		t.Error("Expected trailing newline")
	}
	onlyFile(t, dir, "report.json")
}

func TestWriteJSONAtomicKeepsOldReportOnEncodeError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	if err := WriteJSONAtomic(path, map[string]int{"iterations_run": 80}, 0o600); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	if err := WriteJSONAtomic(path, make(chan int), 0o600); err == nil {
		t.Fatal("Expected error for unencodable value")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var out map[string]int
	if err := json.Unmarshal(data, &out); err != nil || out["iterations_run"] != 80 {
		t.Errorf("Old report should survive, got %q (%v)", data, err)
	}
	onlyFile(t, dir, "report.json")
}
