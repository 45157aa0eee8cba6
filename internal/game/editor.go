package game

import (
	"github.com/ekazakov/tiersort/internal/models"
)

// EnterEditMode snapshots the committed placement into a scratch copy and
// activates position editing. All editor operations work on the scratch
// copy until SaveEdits promotes it.
func (e *Engine) EnterEditMode() {
	e.EditingPositions = true
	e.Selected = nil
	e.TempCategorized = copyCategorized(e.Categorized)
}

// ExitEditMode discards the scratch copy and clears the selection. The
// committed placement is untouched.
func (e *Engine) ExitEditMode() {
	e.EditingPositions = false
	e.Selected = nil
	e.TempCategorized = nil
}

// SelectForSwap toggles the selection of a placed player. Selecting an
// already-selected (player, category) pair deselects it; at most two
// players may be selected, and a third pick while two are selected is a
// silent no-op until the caller deselects or swaps.
func (e *Engine) SelectForSwap(playerID int64, categoryName string) {
	for i, sel := range e.Selected {
		if sel.Player.ID == playerID && sel.CategoryName == categoryName {
			e.Selected = append(e.Selected[:i], e.Selected[i+1:]...)
			return
		}
	}
	if len(e.Selected) >= 2 {
		return
	}
	idx := indexByID(e.TempCategorized[categoryName], playerID)
	if idx < 0 {
		return
	}
	e.Selected = append(e.Selected, SelectedPlayer{
		Player:       e.TempCategorized[categoryName][idx],
		CategoryName: categoryName,
	})
}

// SwapSelected exchanges the two selected players' slots in the scratch
// copy. Within one category the two positions are swapped; across
// categories each list's entry becomes the other player, so capacities are
// unaffected. The selection is cleared on success. Returns false without
// mutating when fewer than two players are selected or a selected player
// can no longer be located in its stated category.
func (e *Engine) SwapSelected() bool {
	if len(e.Selected) != 2 {
		return false
	}
	first, second := e.Selected[0], e.Selected[1]

	firstIdx := indexByID(e.TempCategorized[first.CategoryName], first.Player.ID)
	secondIdx := indexByID(e.TempCategorized[second.CategoryName], second.Player.ID)
	if firstIdx < 0 || secondIdx < 0 {
		return false
	}

	if first.CategoryName == second.CategoryName {
		list := e.TempCategorized[first.CategoryName]
		list[firstIdx], list[secondIdx] = list[secondIdx], list[firstIdx]
	} else {
		e.TempCategorized[first.CategoryName][firstIdx] = second.Player
		e.TempCategorized[second.CategoryName][secondIdx] = first.Player
	}

	e.Selected = nil
	return true
}

// SaveEdits commits the scratch copy over the real placement and leaves
// edit mode.
func (e *Engine) SaveEdits() {
	if e.TempCategorized != nil {
		e.Categorized = e.TempCategorized
	}
	e.EditingPositions = false
	e.Selected = nil
	e.TempCategorized = nil
}

// copyCategorized deep-copies a placement map so scratch edits never alias
// the committed lists.
func copyCategorized(src models.CategorizedPlayers) models.CategorizedPlayers {
	dst := make(models.CategorizedPlayers, len(src))
	for name, players := range src {
		list := make([]models.Player, len(players))
		copy(list, players)
		dst[name] = list
	}
	return dst
}
