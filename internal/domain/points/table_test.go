package points

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_CanonicalValues(t *testing.T) {
	t.Parallel()

	table := Default()
	cases := map[string]int{
		"Ballon d'Or Win":                5,
		"Ballon d'Or 2nd Place":          3,
		"Ballon d'Or 3rd Place":          1,
		"La Liga Title":                  1,
		"Champions League Win":           5,
		"La Liga Best Player Award":      4,
		"La Liga Breakthrough Player":    1,
		"La Liga Golden Boot":            3,
		"20+ Goal La Liga Season":        2,
		"Most Assists in La Liga Season": 2,
		"10+ Assist La Liga Season":      1,
		"Cup Final Winner":               1,
		"Other Trophies":                 1,
		"200+ La Liga Goals":             5,
		"100+ La Liga Goals":             2,
		"CL Top Scorer":                  5,
		"Most Assists in CL Season":      2,
	}
	for label, want := range cases {
		if got := table.ValueOf(label); got != want {
			t.Fatalf("unexpected value for %q: got=%d want=%d", label, got, want)
		}
	}
	if table.Len() != len(CanonicalLabels) {
		t.Fatalf("unexpected table size: got=%d want=%d", table.Len(), len(CanonicalLabels))
	}
	for _, entry := range table.Entries() {
		if entry.Value <= 0 {
			t.Fatalf("canonical label %q should be positive, got %d", entry.Label, entry.Value)
		}
	}
}

func TestTable_UnknownLabelIsZero(t *testing.T) {
	t.Parallel()

	table := Default()
	if got := table.ValueOf("Top Scorer Candidate"); got != 0 {
		t.Fatalf("expected 0 for unknown label, got %d", got)
	}
	var empty Table
	if got := empty.ValueOf(string(BallonDorWin)); got != 0 {
		t.Fatalf("expected 0 from zero table, got %d", got)
	}
}

func TestIsCanonical(t *testing.T) {
	t.Parallel()

	for _, label := range CanonicalLabels {
		if !IsCanonical(string(label)) {
			t.Fatalf("expected %q to be canonical", label)
		}
	}
	if IsCanonical("Top Scorer Candidate") {
		t.Fatalf("derived season labels are not canonical")
	}
}

func TestNew_RejectsNegativeAndEmpty(t *testing.T) {
	t.Parallel()

	if _, err := New(map[string]int{"La Liga Title": -1}); err == nil {
		t.Fatalf("expected error for negative value")
	}
	if _, err := New(map[string]int{"  ": 1}); err == nil {
		t.Fatalf("expected error for empty label")
	}
}

func TestTable_WithDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := Default()
	changed, err := base.With(LaLigaTitle, 7)
	if err != nil {
		t.Fatalf("With error: %v", err)
	}
	if base.Value(LaLigaTitle) != 1 {
		t.Fatalf("receiver mutated: got=%d", base.Value(LaLigaTitle))
	}
	if changed.Value(LaLigaTitle) != 7 {
		t.Fatalf("unexpected changed value: got=%d", changed.Value(LaLigaTitle))
	}
}

func TestTable_EntriesOrder(t *testing.T) {
	t.Parallel()

	table, err := Default().With("Zamora Trophy", 2)
	if err != nil {
		t.Fatalf("With error: %v", err)
	}
	table, _ = table.With("Pichichi", 1)

	entries := table.Entries()
	if entries[0].Label != BallonDorWin {
		t.Fatalf("expected canonical order first, got %q", entries[0].Label)
	}
	n := len(entries)
	if entries[n-2].Label != "Pichichi" || entries[n-1].Label != "Zamora Trophy" {
		t.Fatalf("unexpected extra ordering: %q, %q", entries[n-2].Label, entries[n-1].Label)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("replace", func(t *testing.T) {
		table, err := LoadYAML(strings.NewReader("points:\n  \"La Liga Title\": 3\n"))
		if err != nil {
			t.Fatalf("LoadYAML error: %v", err)
		}
		if table.ValueOf("La Liga Title") != 3 {
			t.Fatalf("unexpected La Liga Title value: %d", table.ValueOf("La Liga Title"))
		}
		if table.ValueOf("Ballon d'Or Win") != 0 {
			t.Fatalf("replacement table should not carry defaults")
		}
	})

	t.Run("extends default", func(t *testing.T) {
		table, err := LoadYAML(strings.NewReader("extends_default: true\npoints:\n  \"La Liga Title\": 3\n"))
		if err != nil {
			t.Fatalf("LoadYAML error: %v", err)
		}
		if table.ValueOf("La Liga Title") != 3 {
			t.Fatalf("override not applied")
		}
		if table.ValueOf("Ballon d'Or Win") != 5 {
			t.Fatalf("defaults not carried: %d", table.ValueOf("Ballon d'Or Win"))
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		if _, err := LoadYAML(strings.NewReader("points:\n  \"La Liga Title\": -3\n")); err == nil {
			t.Fatalf("expected error for negative value")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		if _, err := LoadYAML(strings.NewReader("pts:\n  a: 1\n")); err == nil {
			t.Fatalf("expected error for unknown field")
		}
	})

	t.Run("empty document", func(t *testing.T) {
		if _, err := LoadYAML(strings.NewReader("")); err == nil {
			t.Fatalf("expected error for empty document")
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	table, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile empty path: %v", err)
	}
	if table.Value(CLTopScorer) != 5 {
		t.Fatalf("expected default table for empty path")
	}

	path := filepath.Join(t.TempDir(), "points.yaml")
	if err := os.WriteFile(path, []byte("extends_default: true\npoints:\n  \"CL Top Scorer\": 9\n"), 0o600); err != nil {
		t.Fatalf("write points file: %v", err)
	}
	table, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.Value(CLTopScorer) != 9 {
		t.Fatalf("unexpected CL Top Scorer value: %d", table.Value(CLTopScorer))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
