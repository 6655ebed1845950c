package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenDirInManager_NonExistentDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	err := OpenDirInManager(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent directory, got nil")
	}

	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Error message should contain 'directory does not exist', got: %v", err)
	}
}

func TestOpenDirInManager_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "foo.plymouth")
	if err := os.WriteFile(file, []byte("[Plymouth Theme]\n"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	err := OpenDirInManager(file)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Expected 'not a directory' error, got: %v", err)
	}
}
