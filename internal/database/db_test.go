package database

import (
	"path/filepath"
	"testing"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/config"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/internal/sqlgen"
	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

func testArtifact(cfg *config.Config) string {
	gen := sqlgen.New(cfg, 1722000000)

	points := []models.SeriesPoint{
		{Start: 1700000000, Value: 0.5},
		{Start: 1700003600, Value: 0.3},
	}

	var script string
	for _, stmt := range gen.MetaStatements() {
		script += stmt + "\n"
	}
	for _, stmt := range gen.InsertStatements(cfg.Series()[0], points) {
		script += stmt + "\n"
	}
	return script
}

func TestApplyScriptIsIdempotent(t *testing.T) {
	cfg := &config.Config{}
	db, err := New(filepath.Join(t.TempDir(), "recorder.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	script := testArtifact(cfg)

	// Applying the same artifact twice must not duplicate rows or
	// re-register metadata
	for i := 0; i < 2; i++ {
		if err := db.ApplyScript(script); err != nil {
			t.Fatalf("apply %d: %v", i+1, err)
		}
	}

	counts, err := db.CountBySeries(cfg.GetSource())
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if len(counts) != 8 {
		t.Fatalf("registered series = %d, want 8", len(counts))
	}

	for _, c := range counts {
		want := 0
		if c.StatisticID == "greenbutton:on_peak" {
			want = 2
		}
		if c.Rows != want {
			t.Errorf("%s rows = %d, want %d", c.StatisticID, c.Rows, want)
		}
	}
}

func TestApplyScriptRollsBackOnFailure(t *testing.T) {
	cfg := &config.Config{}
	db, err := New(filepath.Join(t.TempDir(), "recorder.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	bad := testArtifact(cfg) + "\nINSERT INTO no_such_table VALUES (1);\n"
	if err := db.ApplyScript(bad); err == nil {
		t.Fatal("expected error for broken artifact")
	}

	counts, err := db.CountBySeries(cfg.GetSource())
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("failed apply left %d registered series behind", len(counts))
	}
}
