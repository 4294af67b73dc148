package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

// LoginRow mirrors the login table layout used by the analytics package.
type LoginRow struct {
	UserID       int64  `parquet:"user_id"`
	KitID        int64  `parquet:"kit_id"`
	LoginDate    string `parquet:"login_date"`
	SessionCount int64  `parquet:"session_count"`
}

// createLoginParquetFile writes a temporary parquet file with login rows and
// returns its path.
func createLoginParquetFile(t *testing.T, dir, filename string, rows []LoginRow) string {
	t.Helper()
	testFile := filepath.Join(dir, filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[LoginRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

func TestReadAll(t *testing.T) {
	testFile := createLoginParquetFile(t, t.TempDir(), "logins.parquet", []LoginRow{
		{UserID: 1, KitID: 2, LoginDate: "2016-03-01", SessionCount: 5},
		{UserID: 2, KitID: 3, LoginDate: "2017-06-25", SessionCount: 1},
	})

	r, err := NewReader(testFile)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer func() { _ = r.Close() }()

	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["login_date"] != "2016-03-01" {
		t.Errorf("Expected login_date=2016-03-01, got %v", rows[0]["login_date"])
	}
	if rows[1]["user_id"] != int64(2) {
		t.Errorf("Expected user_id=2, got %v (%T)", rows[1]["user_id"], rows[1]["user_id"])
	}
}

func TestNewReader_MissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Errorf("Expected error for missing file, got none")
	}
}

func TestNewReader_NotParquet(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "bogus.parquet")
	if err := os.WriteFile(testFile, []byte("not a parquet file"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := NewReader(testFile); err == nil {
		t.Errorf("Expected error for invalid parquet file, got none")
	}
}

func TestReadMultipleFiles_SingleFile(t *testing.T) {
	testFile := createLoginParquetFile(t, t.TempDir(), "logins.parquet", []LoginRow{
		{UserID: 1, KitID: 2, LoginDate: "2016-03-01", SessionCount: 5},
	})

	rows, err := ReadMultipleFiles(testFile)
	if err != nil {
		t.Fatalf("ReadMultipleFiles failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(rows))
	}
}

func TestReadMultipleFiles_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	createLoginParquetFile(t, tmpDir, "logins-2016-03.parquet", []LoginRow{
		{UserID: 1, KitID: 2, LoginDate: "2016-03-01", SessionCount: 5},
		{UserID: 1, KitID: 2, LoginDate: "2016-03-02", SessionCount: 6},
	})
	createLoginParquetFile(t, tmpDir, "logins-2017-06.parquet", []LoginRow{
		{UserID: 2, KitID: 3, LoginDate: "2017-06-25", SessionCount: 1},
	})

	rows, err := ReadMultipleFiles(filepath.Join(tmpDir, "logins-*.parquet"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles failed: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows across both files, got %d", len(rows))
	}
}

func TestReadMultipleFiles_NoMatches(t *testing.T) {
	if _, err := ReadMultipleFiles(filepath.Join(t.TempDir(), "*.parquet")); err == nil {
		t.Errorf("Expected error for empty glob, got none")
	}
}
