// Package game implements the tier-sorting engine: an ordered queue of
// players is consumed one decision at a time into fixed-capacity categories,
// with single-step undo and a post-game position-editing mode.
//
// The engine is pure state: no I/O, no clock, no goroutines. All expected
// business conditions are signaled through the Result enumeration rather
// than errors, so callers branch instead of unwrapping.
package game

import (
	"fmt"

	"github.com/ekazakov/tiersort/internal/models"
)

// Result enumerates the outcomes of a sorting move
type Result string

const (
	ResultSuccess          Result = "success"
	ResultCategoryNotFound Result = "category_not_found"
	ResultCategoryFull     Result = "category_full"
	ResultPlayerNotFound   Result = "player_not_found"
	ResultGameFinished     Result = "game_finished"
)

// HistoryAction records one decision with enough data to invert it.
// For replacements, ReplacedPlayer is the occupant that was bumped back
// into the queue.
type HistoryAction struct {
	Player         models.Player  `json:"player"`
	CategoryName   string         `json:"category_name"`
	WasReplacement bool           `json:"was_replacement"`
	ReplacedPlayer *models.Player `json:"replaced_player,omitempty"`
}

// SelectedPlayer is one half of a pending position swap
type SelectedPlayer struct {
	Player       models.Player `json:"player"`
	CategoryName string        `json:"category_name"`
}

// Engine holds the full state of one sorting session. All fields are
// exported and JSON-tagged so the whole engine serializes as its own
// snapshot (see Snapshot/Restore).
type Engine struct {
	Categories     []models.Category         `json:"categories"`
	Categorized    models.CategorizedPlayers `json:"categorized_players"`
	Queue          []models.Player           `json:"player_queue"`
	CurrentIndex   int                       `json:"current_index"`
	ProcessedCount int                       `json:"processed_count"`
	MaxPlayers     int                       `json:"max_players"`
	Progress       float64                   `json:"progress_percentage"`
	History        []HistoryAction           `json:"history"`

	// Position-editing state. TempCategorized is a scratch copy that is
	// only promoted to Categorized by SaveEdits.
	EditingPositions bool                      `json:"editing_positions"`
	Selected         []SelectedPlayer          `json:"selected_players,omitempty"`
	TempCategorized  models.CategorizedPlayers `json:"temp_categorized_players,omitempty"`
}

// New creates an engine for the given queue and category set. Queue order
// is taken as given; the engine never reorders it. The game is complete
// once every player from the initial queue has been placed.
func New(players []models.Player, categories []models.Category) *Engine {
	categorized := make(models.CategorizedPlayers, len(categories))
	for _, cat := range categories {
		categorized[cat.Name] = []models.Player{}
	}
	queue := make([]models.Player, len(players))
	copy(queue, players)

	return &Engine{
		Categories:  categories,
		Categorized: categorized,
		Queue:       queue,
		MaxPlayers:  len(players),
	}
}

// CurrentPlayer returns the player awaiting a decision, if any
func (e *Engine) CurrentPlayer() (models.Player, bool) {
	if e.CurrentIndex < 0 || e.CurrentIndex >= len(e.Queue) {
		return models.Player{}, false
	}
	return e.Queue[e.CurrentIndex], true
}

// Finished reports whether every player has been placed
func (e *Engine) Finished() bool {
	return e.ProcessedCount >= e.MaxPlayers
}

// CanGoBack reports whether there is a decision to undo
func (e *Engine) CanGoBack() bool {
	return len(e.History) > 0
}

// CategoryFilled returns the "placed / slots" display string for a category
func (e *Engine) CategoryFilled(name string) string {
	cat, ok := e.categoryByName(name)
	if !ok {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", len(e.Categorized[name]), cat.Slots)
}

// PlacePlayer assigns the current queue player to the named category.
// The player is appended to the end of the category's list, the cursor and
// processed count advance, and the move is recorded for undo. A full
// category is not an error: ResultCategoryFull tells the caller to offer
// the replacement flow instead.
func (e *Engine) PlacePlayer(categoryName string) Result {
	cat, ok := e.categoryByName(categoryName)
	if !ok {
		return ResultCategoryNotFound
	}
	if len(e.Categorized[categoryName]) >= cat.Slots {
		return ResultCategoryFull
	}
	current, ok := e.CurrentPlayer()
	if !ok {
		return ResultPlayerNotFound
	}

	e.Categorized[categoryName] = append(e.Categorized[categoryName], current)
	e.ProcessedCount++
	e.CurrentIndex++
	e.recomputeProgress()
	e.History = append(e.History, HistoryAction{
		Player:       current,
		CategoryName: categoryName,
	})

	if e.ProcessedCount >= e.MaxPlayers {
		return ResultGameFinished
	}
	return ResultSuccess
}

// ReplacePlayer swaps the current queue player into the named category in
// place of the occupant with the given id, and appends the bumped occupant
// to the end of the queue so it re-enters the decision loop later.
// ProcessedCount is deliberately untouched: re-queueing a player must not
// inflate the completion percentage. If the count already meets the
// threshold the finished signal is re-issued; callers treat it as an
// idempotent re-check, not a new completion event.
func (e *Engine) ReplacePlayer(categoryName string, playerID int64) Result {
	if _, ok := e.categoryByName(categoryName); !ok {
		return ResultCategoryNotFound
	}
	current, ok := e.CurrentPlayer()
	if !ok {
		return ResultPlayerNotFound
	}
	idx := indexByID(e.Categorized[categoryName], playerID)
	if idx < 0 {
		// The stated occupant is not in the category: stale request,
		// nothing to swap with.
		return ResultPlayerNotFound
	}

	replaced := e.Categorized[categoryName][idx]
	e.Categorized[categoryName][idx] = current
	e.Queue = append(e.Queue, replaced)
	e.CurrentIndex++
	e.History = append(e.History, HistoryAction{
		Player:         current,
		CategoryName:   categoryName,
		WasReplacement: true,
		ReplacedPlayer: &replaced,
	})

	if e.ProcessedCount >= e.MaxPlayers {
		return ResultGameFinished
	}
	return ResultSuccess
}

// GoBack undoes the most recent decision. Undo is strictly LIFO: a
// replacement is reversed by restoring the bumped occupant to the slot the
// replacing player holds and truncating the queue tail, which is only
// correct because replacement is the sole operation that grows the queue.
// Returns false when there is nothing to undo.
func (e *Engine) GoBack() bool {
	if len(e.History) == 0 {
		return false
	}
	last := e.History[len(e.History)-1]
	e.History = e.History[:len(e.History)-1]

	if last.WasReplacement {
		idx := indexByID(e.Categorized[last.CategoryName], last.Player.ID)
		if idx >= 0 && last.ReplacedPlayer != nil {
			e.Categorized[last.CategoryName][idx] = *last.ReplacedPlayer
		}
		e.Queue = e.Queue[:len(e.Queue)-1]
	} else {
		e.Categorized[last.CategoryName] = removeByID(e.Categorized[last.CategoryName], last.Player.ID)
		e.ProcessedCount--
	}

	e.CurrentIndex--
	e.recomputeProgress()
	return true
}

// Flatten returns the committed placement as category name -> player ids,
// the shape handed to persistence and sharing.
func (e *Engine) Flatten() map[string][]int64 {
	out := make(map[string][]int64, len(e.Categorized))
	for name, players := range e.Categorized {
		ids := make([]int64, len(players))
		for i, p := range players {
			ids[i] = p.ID
		}
		out[name] = ids
	}
	return out
}

func (e *Engine) recomputeProgress() {
	if e.MaxPlayers == 0 {
		e.Progress = 0
		return
	}
	e.Progress = float64(e.ProcessedCount) / float64(e.MaxPlayers) * 100
}

func (e *Engine) categoryByName(name string) (models.Category, bool) {
	for _, cat := range e.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return models.Category{}, false
}

// indexByID returns the position of the player with the given id, or -1
func indexByID(players []models.Player, id int64) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// removeByID returns the list without the player with the given id
func removeByID(players []models.Player, id int64) []models.Player {
	out := players[:0]
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
