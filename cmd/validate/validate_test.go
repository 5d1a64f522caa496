package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileReportsCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.bob")
	if err := os.WriteFile(path, []byte("a --> b"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := validateFile(path); err != nil {
		t.Fatalf("validateFile() error = %v", err)
	}
}

func TestValidateFileMissingFileErrors(t *testing.T) {
	if err := validateFile(filepath.Join(t.TempDir(), "missing.bob")); err == nil {
		t.Error("expected an error for a missing input file")
	}
}

func TestRunValidateStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.bob")
	if err := os.WriteFile(ok, []byte("a --> b"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	missing := filepath.Join(dir, "missing.bob")

	if err := runValidate(nil, []string{ok, missing}); err == nil {
		t.Error("expected runValidate to surface the read error for the missing file")
	}
}
