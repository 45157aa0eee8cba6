package game_test

import (
	"testing"

	"github.com/ekazakov/tiersort/internal/game"
	"github.com/ekazakov/tiersort/internal/models"
)

// TestSnapshotRestore_MidGame serializes a half-played engine and expects
// the restored copy to continue exactly where the original left off.
func TestSnapshotRestore_MidGame(t *testing.T) {
	e := game.New(squad(4), []models.Category{
		{Name: "goat", Slots: 2},
		{Name: "good", Slots: 2},
	})
	e.PlacePlayer("goat")
	e.ReplacePlayer("goat", 1)

	data, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	restored, err := game.Restore(data)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.CurrentIndex != e.CurrentIndex || restored.ProcessedCount != e.ProcessedCount {
		t.Errorf("counters diverged: got index=%d processed=%d", restored.CurrentIndex, restored.ProcessedCount)
	}
	if len(restored.Queue) != len(e.Queue) {
		t.Errorf("queue length diverged: got %d, want %d", len(restored.Queue), len(e.Queue))
	}

	// Undo must still work across the serialization boundary; the last
	// action was a replacement.
	if !restored.GoBack() {
		t.Fatal("expected undo to work on the restored engine")
	}
	if restored.Categorized["goat"][0].ID != 1 {
		t.Errorf("expected undo to restore player 1, got %v", restored.Categorized["goat"])
	}
	if len(restored.Queue) != 4 {
		t.Errorf("expected queue truncated back to 4, got %d", len(restored.Queue))
	}
}

func TestSnapshotRestore_EditMode(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()
	e.SelectForSwap(1, "goat")

	data, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	restored, err := game.Restore(data)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if !restored.EditingPositions {
		t.Error("expected edit mode preserved")
	}
	if len(restored.Selected) != 1 || restored.Selected[0].Player.ID != 1 {
		t.Errorf("expected selection preserved, got %v", restored.Selected)
	}

	restored.SelectForSwap(3, "good")
	if !restored.SwapSelected() {
		t.Error("expected swap to work on the restored scratch copy")
	}
}

func TestRestore_Garbage(t *testing.T) {
	if _, err := game.Restore([]byte("not json")); err == nil {
		t.Error("expected an error for malformed snapshot data")
	}
}

func TestCategoriesFor(t *testing.T) {
	tests := []struct {
		playerCount int
		wantSlots   int
	}{
		{10, 10},
		{8, 10},
		{11, 20},
		{20, 20},
	}
	for _, tt := range tests {
		cats := game.CategoriesFor(tt.playerCount)
		total := 0
		for _, c := range cats {
			total += c.Slots
		}
		if total != tt.wantSlots {
			t.Errorf("CategoriesFor(%d): slot sum %d, want %d", tt.playerCount, total, tt.wantSlots)
		}
		if len(cats) != 4 {
			t.Errorf("CategoriesFor(%d): expected 4 categories, got %d", tt.playerCount, len(cats))
		}
	}
}
