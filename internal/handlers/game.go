package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleStartGame creates a new sorting session for a club
func (h *Handlers) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req GameStartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.ClubID <= 0 {
		respondError(w, BadRequest("Missing club_id"))
		return
	}

	state, err := h.Game.StartGame(r.Context(), req.ClubID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, state)
}

// handleGetGame returns the current state of a session
func (h *Handlers) handleGetGame(w http.ResponseWriter, r *http.Request) {
	state, err := h.Game.GetState(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handlePlacePlayer places the current queue player into a category
func (h *Handlers) handlePlacePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Category == "" {
		respondError(w, BadRequest("Missing category"))
		return
	}

	outcome, err := h.Game.PlacePlayer(r.Context(), chi.URLParam(r, "sessionID"), req.Category)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, MoveResponse{Result: string(outcome.Result), State: outcome.State})
}

// handleReplacePlayer swaps the current queue player in for a placed one
func (h *Handlers) handleReplacePlayer(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Category == "" || req.PlayerID <= 0 {
		respondError(w, BadRequest("Missing category or player_id"))
		return
	}

	outcome, err := h.Game.ReplacePlayer(r.Context(), chi.URLParam(r, "sessionID"), req.Category, req.PlayerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, MoveResponse{Result: string(outcome.Result), State: outcome.State})
}

// handleUndo reverts the most recent move
func (h *Handlers) handleUndo(w http.ResponseWriter, r *http.Request) {
	state, undone, err := h.Game.Undo(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, UndoResponse{Undone: undone, State: state})
}

// handleEnterEditMode activates position editing on a finished game
func (h *Handlers) handleEnterEditMode(w http.ResponseWriter, r *http.Request) {
	state, err := h.Game.EnterEditMode(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleExitEditMode discards pending edits
func (h *Handlers) handleExitEditMode(w http.ResponseWriter, r *http.Request) {
	state, err := h.Game.ExitEditMode(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleSelectForSwap toggles a placed player's swap selection
func (h *Handlers) handleSelectForSwap(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Category == "" || req.PlayerID <= 0 {
		respondError(w, BadRequest("Missing category or player_id"))
		return
	}

	state, err := h.Game.SelectForSwap(r.Context(), chi.URLParam(r, "sessionID"), req.PlayerID, req.Category)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleSwapSelected exchanges the two selected players' positions
func (h *Handlers) handleSwapSelected(w http.ResponseWriter, r *http.Request) {
	state, swapped, err := h.Game.SwapSelected(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, SwapResponse{Swapped: swapped, State: state})
}

// handleSaveEdits commits edited positions over the real placement
func (h *Handlers) handleSaveEdits(w http.ResponseWriter, r *http.Request) {
	state, err := h.Game.SaveEdits(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleCompleteGame stores a finished game as a permanent result
func (h *Handlers) handleCompleteGame(w http.ResponseWriter, r *http.Request) {
	resultID, err := h.Game.Complete(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, CompleteResponse{ResultID: resultID})
}

// handleAbandonGame deletes a session without saving a result
func (h *Handlers) handleAbandonGame(w http.ResponseWriter, r *http.Request) {
	if err := h.Game.Abandon(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleGetRatings returns aggregated ratings for a club
func (h *Handlers) handleGetRatings(w http.ResponseWriter, r *http.Request) {
	clubID, err := parseIDParam(r, "clubID")
	if err != nil {
		respondError(w, err)
		return
	}

	ratings, err := h.Stats.GetClubRatings(r.Context(), clubID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ratings)
}
