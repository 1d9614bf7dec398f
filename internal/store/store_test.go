package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "new.db")

	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	for _, table := range []string{"layouts", "builds"} {
		var name string
		err := st.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	st := createTestStore(t)

	checks := map[string]string{
		"journal_mode": "wal",
		"synchronous":  "1",
		"busy_timeout": "5000",
		"foreign_keys": "1",
	}
	for name, want := range checks {
		if err := st.verifyPragma(name, want); err != nil {
			t.Error(err)
		}
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "idem.db")

	for i := 0; i < 3; i++ {
		st, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open #%d failed: %v", i+1, err)
		}
		st.Close()
	}

	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("final Open failed: %v", err)
	}
	defer st.Close()

	var version int
	if err := st.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("user_version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestOpen_CreatesBuildIndex(t *testing.T) {
	st := createTestStore(t)

	var name string
	err := st.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='index' AND name='idx_builds_rig_seq'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("index not found: %v", err)
	}
}

func TestClose_NilDB(t *testing.T) {
	var st Store
	if err := st.Close(); err != nil {
		t.Errorf("Close on zero Store = %v, want nil", err)
	}
}
