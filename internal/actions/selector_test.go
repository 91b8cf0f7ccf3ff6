package actions

import (
	"testing"

	"github.com/abhinav-rk/studyloop/internal/learnstate"
)

func defaultDecisions() learnstate.Decisions {
	return learnstate.Decide(learnstate.Classify(nil))
}

func TestSelectCapsAtThree(t *testing.T) {
	// Default decisions map four fields (collaboration "none" is unmapped),
	// so the cap at three must bite.
	chosen, _ := Select(defaultDecisions(), nil)
	if len(chosen) != MaxPerGeneration {
		t.Fatalf("chose %d actions, want %d", len(chosen), MaxPerGeneration)
	}

	// Field order: session design first.
	if chosen[0].ID != "sd-standard" {
		t.Errorf("first action = %s, want sd-standard", chosen[0].ID)
	}
}

func TestSelectSkipsUnmappedField(t *testing.T) {
	d := defaultDecisions()
	for _, a := range mustSelect(t, d, nil) {
		if a.ID == "cp-group-session" {
			t.Error("collaboration pressure none must not yield a group action")
		}
	}

	d.CollaborationPressure = learnstate.PressureModerate
	// Consume the cap budget check: moderate pressure maps, but the first
	// three fields already fill the generation.
	chosen, _ := Select(d, nil)
	if len(chosen) != MaxPerGeneration {
		t.Fatalf("chose %d, want %d", len(chosen), MaxPerGeneration)
	}
}

func TestSelectPrefersUnseen(t *testing.T) {
	d := defaultDecisions()
	d.SessionDesign = learnstate.DesignShorterBlocks

	first, history := Select(d, nil)
	if first[0].ID != "sd-short-sprint" {
		t.Fatalf("first pick = %s, want sd-short-sprint", first[0].ID)
	}

	second, _ := Select(d, history)
	if second[0].ID != "sd-short-break" {
		t.Errorf("second pick = %s, want the unseen sd-short-break", second[0].ID)
	}
}

func TestSelectRepeatsWhenExhausted(t *testing.T) {
	d := defaultDecisions()
	d.SessionDesign = learnstate.DesignStandard // single candidate

	history := []string{"sd-standard"}
	chosen, _ := Select(d, history)
	if len(chosen) == 0 || chosen[0].ID != "sd-standard" {
		t.Errorf("exhausted field should repeat its first candidate, got %v", chosen)
	}
}

func TestSelectNoDuplicatesWithinGeneration(t *testing.T) {
	chosen, _ := Select(defaultDecisions(), nil)
	seen := map[string]bool{}
	for _, a := range chosen {
		if seen[a.ID] {
			t.Fatalf("duplicate action %s in one generation", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestSelectLeavesInputHistoryAlone(t *testing.T) {
	// A history slice with spare capacity must not have the appended ids
	// written into its backing array.
	backing := make([]string, 2, 8)
	backing[0], backing[1] = "seen-a", "seen-b"
	history := backing[:2]

	_, updated := Select(defaultDecisions(), history)
	if len(updated) <= len(history) {
		t.Fatalf("updated history has %d entries, want more than %d", len(updated), len(history))
	}

	spare := backing[:cap(backing)]
	for i := len(history); i < len(spare); i++ {
		if spare[i] != "" {
			t.Fatalf("backing array written at index %d: %q", i, spare[i])
		}
	}
}

func TestHistoryBounded(t *testing.T) {
	d := defaultDecisions()

	var history []string
	for i := 0; i < 30; i++ {
		_, history = Select(d, history)
		if len(history) > HistoryCap {
			t.Fatalf("iteration %d: history length %d exceeds cap %d", i, len(history), HistoryCap)
		}
	}

	if len(history) != HistoryCap {
		t.Errorf("steady-state history length = %d, want %d", len(history), HistoryCap)
	}
}

func TestHistoryKeepsNewest(t *testing.T) {
	d := defaultDecisions()
	d.SessionDesign = learnstate.DesignShorterBlocks

	history := make([]string, HistoryCap)
	for i := range history {
		history[i] = "old"
	}

	chosen, updated := Select(d, history)
	if len(updated) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(updated), HistoryCap)
	}
	// The newest ids survive the trim.
	tail := updated[len(updated)-len(chosen):]
	for i, a := range chosen {
		if tail[i] != a.ID {
			t.Errorf("tail[%d] = %s, want %s", i, tail[i], a.ID)
		}
	}
}

func mustSelect(t *testing.T, d learnstate.Decisions, history []string) []Action {
	t.Helper()
	chosen, _ := Select(d, history)
	if len(chosen) == 0 {
		t.Fatal("expected at least one action")
	}
	return chosen
}
