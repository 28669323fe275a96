package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neopixel.db")
	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = conn.Close() }()

	for _, table := range []string{"peers", "broadcasts", "operators"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// idempotent on reopen
	if err := ensureSchema(conn); err != nil {
		t.Fatalf("ensureSchema twice: %v", err)
	}
}

func TestInitDB_BadPath(t *testing.T) {
	if _, err := InitDB(filepath.Join(t.TempDir(), "missing", "dir", "x.db")); err == nil {
		t.Fatalf("expected error for unreachable path")
	}
}
