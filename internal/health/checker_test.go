package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecotrack-app/ecotrack/internal/infra/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Checker Tests ──────────────────────────────────────────────────────────

func TestNewChecker(t *testing.T) {
	db := newTestDB(t)

	c := NewChecker(db, t.TempDir())
	if c == nil {
		t.Fatal("NewChecker() returned nil")
	}
	if len(c.checks) != 2 {
		t.Errorf("checks = %d, want 2", len(c.checks))
	}
}

func TestChecker_RunAllHealthy(t *testing.T) {
	db := newTestDB(t)

	c := NewChecker(db, t.TempDir())
	c.runAll(context.Background())

	statuses := c.Statuses()
	if len(statuses) != 2 {
		t.Fatalf("Statuses() = %d, want 2", len(statuses))
	}
	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %q should be healthy, got error: %s", s.Name, s.Error)
		}
	}
	if !c.IsHealthy() {
		t.Error("IsHealthy() should be true when all checks pass")
	}
}

func TestChecker_IsHealthy_BeforeRun(t *testing.T) {
	db := newTestDB(t)

	c := NewChecker(db, t.TempDir())

	// Before any run, there are no statuses — IsHealthy returns true (vacuously)
	if !c.IsHealthy() {
		t.Error("IsHealthy() should be true before first run (no statuses)")
	}
}

func TestChecker_DataDirCheck_Missing(t *testing.T) {
	db := newTestDB(t)
	dataDir := filepath.Join(t.TempDir(), "nonexistent")

	c := NewChecker(db, dataDir)
	c.runAll(context.Background())

	for _, s := range c.Statuses() {
		if s.Name == "data_dir" && s.Healthy {
			t.Error("data_dir should fail when the directory is missing")
		}
	}
}

func TestChecker_DataDirCheck_FileNotDir(t *testing.T) {
	db := newTestDB(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	os.WriteFile(dataDir, []byte("not a dir"), 0644)

	c := NewChecker(db, dataDir)
	c.runAll(context.Background())

	for _, s := range c.Statuses() {
		if s.Name == "data_dir" && s.Healthy {
			t.Error("data_dir should fail when the path is a file")
		}
	}
}

func TestChecker_FailingCheck(t *testing.T) {
	c := &Checker{
		checks: []Check{
			{
				Name: "always_fail",
				CheckFn: func(ctx context.Context) error {
					return os.ErrPermission
				},
			},
		},
	}

	c.runAll(context.Background())

	statuses := c.Statuses()
	if statuses[0].Healthy {
		t.Error("always_fail check should not be healthy")
	}
	if statuses[0].Error == "" {
		t.Error("error message should be populated")
	}
	if c.IsHealthy() {
		t.Error("IsHealthy() should be false with a failing check")
	}
}

func TestChecker_StatusesCopy(t *testing.T) {
	db := newTestDB(t)
	c := NewChecker(db, t.TempDir())
	c.runAll(context.Background())

	s1 := c.Statuses()
	s2 := c.Statuses()

	if len(s1) > 0 {
		s1[0].Healthy = false
		if !s2[0].Healthy {
			t.Error("Statuses() should return a copy, not a reference")
		}
	}
}
