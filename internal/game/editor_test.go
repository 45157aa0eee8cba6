package game_test

import (
	"testing"

	"github.com/ekazakov/tiersort/internal/game"
	"github.com/ekazakov/tiersort/internal/models"
)

// finishedEngine plays a 4-player game to completion:
// goat=[A B], good=[C D]
func finishedEngine(t *testing.T) *game.Engine {
	t.Helper()
	e := game.New(squad(4), []models.Category{
		{Name: "goat", Slots: 2},
		{Name: "good", Slots: 2},
	})
	e.PlacePlayer("goat")
	e.PlacePlayer("goat")
	e.PlacePlayer("good")
	if res := e.PlacePlayer("good"); res != game.ResultGameFinished {
		t.Fatalf("setup: expected game_finished, got %q", res)
	}
	return e
}

func TestEnterEditMode_ScratchCopyDoesNotAlias(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	if !e.EditingPositions {
		t.Fatal("expected edit mode active")
	}

	// Mutating the scratch copy must leave the committed placement alone.
	e.TempCategorized["goat"][0] = models.Player{ID: 999, Name: "Impostor"}
	if e.Categorized["goat"][0].ID != 1 {
		t.Error("scratch copy aliases the committed placement")
	}
}

func TestSelectForSwap_Toggle(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(1, "goat")
	if len(e.Selected) != 1 {
		t.Fatalf("expected 1 selection, got %d", len(e.Selected))
	}

	// Same pair again deselects
	e.SelectForSwap(1, "goat")
	if len(e.Selected) != 0 {
		t.Errorf("expected selection cleared, got %d", len(e.Selected))
	}
}

func TestSelectForSwap_ThirdPickIsNoOp(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(1, "goat")
	e.SelectForSwap(2, "goat")
	e.SelectForSwap(3, "good")

	if len(e.Selected) != 2 {
		t.Fatalf("expected third pick ignored, got %d selections", len(e.Selected))
	}
	if e.Selected[0].Player.ID != 1 || e.Selected[1].Player.ID != 2 {
		t.Error("third pick must not replace an existing selection")
	}
}

func TestSelectForSwap_UnplacedPlayerIgnored(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(99, "goat")
	if len(e.Selected) != 0 {
		t.Errorf("expected no selection for a player not in the category, got %d", len(e.Selected))
	}
}

func TestSwapSelected_SameCategory(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(1, "goat")
	e.SelectForSwap(2, "goat")
	if !e.SwapSelected() {
		t.Fatal("expected swap to succeed")
	}

	goat := e.TempCategorized["goat"]
	if goat[0].ID != 2 || goat[1].ID != 1 {
		t.Errorf("expected goat [B A], got %v", goat)
	}
	if len(e.Selected) != 0 {
		t.Error("expected selection cleared after swap")
	}
}

func TestSwapSelected_AcrossCategories(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(1, "goat")
	e.SelectForSwap(3, "good")
	if !e.SwapSelected() {
		t.Fatal("expected swap to succeed")
	}

	if e.TempCategorized["goat"][0].ID != 3 {
		t.Errorf("expected C in goat slot 0, got %v", e.TempCategorized["goat"])
	}
	if e.TempCategorized["good"][0].ID != 1 {
		t.Errorf("expected A in good slot 0, got %v", e.TempCategorized["good"])
	}
	// 1:1 swap keeps every category at its previous size
	if len(e.TempCategorized["goat"]) != 2 || len(e.TempCategorized["good"]) != 2 {
		t.Error("swap must not change category sizes")
	}
}

// TestSwapSelected_Symmetry swaps the same two players twice and expects
// the scratch copy back at its pre-swap arrangement.
func TestSwapSelected_Symmetry(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(1, "goat")
	e.SelectForSwap(3, "good")
	if !e.SwapSelected() {
		t.Fatal("first swap failed")
	}

	// Re-select in their new homes and swap back
	e.SelectForSwap(1, "good")
	e.SelectForSwap(3, "goat")
	if !e.SwapSelected() {
		t.Fatal("second swap failed")
	}

	if e.TempCategorized["goat"][0].ID != 1 || e.TempCategorized["good"][0].ID != 3 {
		t.Errorf("double swap did not restore arrangement: goat=%v good=%v",
			e.TempCategorized["goat"], e.TempCategorized["good"])
	}
}

func TestSwapSelected_RequiresTwoSelections(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	if e.SwapSelected() {
		t.Error("expected swap to fail with no selection")
	}
	e.SelectForSwap(1, "goat")
	if e.SwapSelected() {
		t.Error("expected swap to fail with one selection")
	}
}

func TestSwapSelected_StaleSelection(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()

	e.SelectForSwap(1, "goat")
	e.SelectForSwap(3, "good")

	// Drift the scratch copy out from under the selection
	e.TempCategorized["goat"] = e.TempCategorized["goat"][1:]

	if e.SwapSelected() {
		t.Error("expected swap to fail on stale selection")
	}
	if len(e.Selected) != 2 {
		t.Error("failed swap must not clear the selection")
	}
}

func TestSaveEdits_CommitsScratchCopy(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()
	e.SelectForSwap(1, "goat")
	e.SelectForSwap(3, "good")
	e.SwapSelected()

	e.SaveEdits()

	if e.EditingPositions {
		t.Error("expected edit mode exited")
	}
	if e.Categorized["goat"][0].ID != 3 || e.Categorized["good"][0].ID != 1 {
		t.Errorf("expected committed placement to carry the swap: goat=%v good=%v",
			e.Categorized["goat"], e.Categorized["good"])
	}
	if e.TempCategorized != nil {
		t.Error("expected scratch copy released after save")
	}
}

func TestExitEditMode_DiscardsScratchCopy(t *testing.T) {
	e := finishedEngine(t)
	e.EnterEditMode()
	e.SelectForSwap(1, "goat")
	e.SelectForSwap(3, "good")
	e.SwapSelected()

	e.ExitEditMode()

	if e.EditingPositions {
		t.Error("expected edit mode exited")
	}
	if e.Categorized["goat"][0].ID != 1 || e.Categorized["good"][0].ID != 3 {
		t.Error("discarded edits must not touch the committed placement")
	}
	if len(e.Selected) != 0 || e.TempCategorized != nil {
		t.Error("expected selection and scratch copy cleared")
	}
}
