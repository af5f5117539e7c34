package sqlite_test

import (
	"testing"

	"github.com/ecotrack-app/ecotrack/internal/infra/sqlite"
)

func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestState_AbsentKeyReturnsEmpty(t *testing.T) {
	db := testDB(t)

	got, err := db.GetState("missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
}

func TestState_SetGetRoundTrip(t *testing.T) {
	db := testDB(t)

	if err := db.SetState("progress", `{"streakDays":3}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := db.GetState("progress")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"streakDays":3}` {
		t.Errorf("unexpected value: %q", got)
	}
}

func TestState_SetOverwrites(t *testing.T) {
	db := testDB(t)

	_ = db.SetState("progress", "first")
	if err := db.SetState("progress", "second"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := db.GetState("progress")
	if got != "second" {
		t.Errorf("expected overwrite to win, got %q", got)
	}
}

func TestOpen_ReopenSameDir(t *testing.T) {
	dir := t.TempDir()

	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = db.SetState("k", "v")
	db.Close()

	db2, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	got, _ := db2.GetState("k")
	if got != "v" {
		t.Errorf("expected value to survive reopen, got %q", got)
	}
}
