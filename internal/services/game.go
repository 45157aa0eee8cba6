package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ekazakov/tiersort/internal/errors"
	"github.com/ekazakov/tiersort/internal/game"
	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository"
	"github.com/ekazakov/tiersort/pkg/telegram"
)

// GameServiceRepository defines the repository methods needed by GameService
type GameServiceRepository interface {
	repository.ClubRepository
	repository.PlayerRepository
	repository.SessionRepository
	repository.ResultRepository
}

// GameService runs sorting sessions. The engine itself is pure state; the
// service rehydrates it from the stored snapshot, applies one move, and
// persists the new snapshot, so any instance can serve any session.
type GameService struct {
	log         logger.Logger
	repo        GameServiceRepository
	settings    SettingsServicer
	telegram    telegram.Client
	broadcaster Broadcaster
	newID       func() string // for testing: defaults to uuid.NewString
}

// NewGameService creates a new GameService
func NewGameService(log logger.Logger, repo GameServiceRepository, settings SettingsServicer, tg telegram.Client) *GameService {
	return &GameService{
		log:      log,
		repo:     repo,
		settings: settings,
		telegram: tg,
		newID:    uuid.NewString,
	}
}

// SetBroadcaster sets the broadcaster for sending game events to clients
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetIDGenerator sets a custom session id generator (for testing)
func (s *GameService) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// GameState is one session's full state as returned to clients
type GameState struct {
	SessionID string `json:"sessionId"`
	ClubID    int64  `json:"clubId"`
	*game.Engine
}

// MoveOutcome pairs a move's result code with the state it produced
type MoveOutcome struct {
	Result game.Result `json:"result"`
	State  *GameState  `json:"state"`
}

// StartGame creates a new sorting session for a club. The queue is the
// club's players in display order; the category set depends on squad size.
func (s *GameService) StartGame(ctx context.Context, clubID int64) (*GameState, error) {
	open, err := s.settings.AreGamesOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrGamesClosed
	}

	club, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.ListPlayersByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	engine := game.New(players, game.CategoriesFor(len(players)))
	sessionID := s.newID()

	if err := s.saveEngine(ctx, sessionID, clubID, engine); err != nil {
		return nil, err
	}

	s.log.Info("Game started", "session_id", sessionID, "club", club.Name, "players", len(players))
	s.broadcast("game_started", map[string]interface{}{
		"sessionId": sessionID,
		"clubId":    clubID,
		"clubName":  club.Name,
	})

	return &GameState{SessionID: sessionID, ClubID: clubID, Engine: engine}, nil
}

// GetState returns the current state of a session
func (s *GameService) GetState(ctx context.Context, sessionID string) (*GameState, error) {
	engine, clubID, err := s.loadEngine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &GameState{SessionID: sessionID, ClubID: clubID, Engine: engine}, nil
}

// PlacePlayer places the current queue player into a category
func (s *GameService) PlacePlayer(ctx context.Context, sessionID, categoryName string) (*MoveOutcome, error) {
	return s.applyMove(ctx, sessionID, func(e *game.Engine) game.Result {
		return e.PlacePlayer(categoryName)
	})
}

// ReplacePlayer swaps the current queue player in for a placed one,
// re-queueing the displaced player
func (s *GameService) ReplacePlayer(ctx context.Context, sessionID, categoryName string, playerID int64) (*MoveOutcome, error) {
	return s.applyMove(ctx, sessionID, func(e *game.Engine) game.Result {
		return e.ReplacePlayer(categoryName, playerID)
	})
}

// Undo reverts the most recent move. Undone is false when there was no
// history to pop.
func (s *GameService) Undo(ctx context.Context, sessionID string) (*GameState, bool, error) {
	engine, clubID, err := s.loadEngine(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	undone := engine.GoBack()
	if undone {
		if err := s.saveEngine(ctx, sessionID, clubID, engine); err != nil {
			return nil, false, err
		}
	}
	return &GameState{SessionID: sessionID, ClubID: clubID, Engine: engine}, undone, nil
}

// EnterEditMode activates post-game position editing on the session
func (s *GameService) EnterEditMode(ctx context.Context, sessionID string) (*GameState, error) {
	return s.applyEdit(ctx, sessionID, false, func(e *game.Engine) { e.EnterEditMode() })
}

// ExitEditMode discards pending edits and leaves edit mode
func (s *GameService) ExitEditMode(ctx context.Context, sessionID string) (*GameState, error) {
	return s.applyEdit(ctx, sessionID, true, func(e *game.Engine) { e.ExitEditMode() })
}

// SelectForSwap toggles a placed player's selection in edit mode
func (s *GameService) SelectForSwap(ctx context.Context, sessionID string, playerID int64, categoryName string) (*GameState, error) {
	return s.applyEdit(ctx, sessionID, true, func(e *game.Engine) { e.SelectForSwap(playerID, categoryName) })
}

// SwapSelected exchanges the positions of the two selected players.
// Swapped is false when the selection was incomplete or stale.
func (s *GameService) SwapSelected(ctx context.Context, sessionID string) (*GameState, bool, error) {
	engine, clubID, err := s.loadEngine(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if !engine.EditingPositions {
		return nil, false, ErrNotEditing
	}

	swapped := engine.SwapSelected()
	if swapped {
		if err := s.saveEngine(ctx, sessionID, clubID, engine); err != nil {
			return nil, false, err
		}
	}
	return &GameState{SessionID: sessionID, ClubID: clubID, Engine: engine}, swapped, nil
}

// SaveEdits commits the edited positions over the real placement
func (s *GameService) SaveEdits(ctx context.Context, sessionID string) (*GameState, error) {
	return s.applyEdit(ctx, sessionID, true, func(e *game.Engine) { e.SaveEdits() })
}

// Complete stores a finished session as a permanent game result and
// removes the session. The result feeds the club's ratings.
func (s *GameService) Complete(ctx context.Context, sessionID string) (int64, error) {
	engine, clubID, err := s.loadEngine(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if !engine.Finished() {
		return 0, ErrGameNotFinished
	}

	resultID, err := s.repo.SaveGameResult(ctx, sessionID, clubID, engine.Flatten())
	if err != nil {
		return 0, err
	}

	if err := s.repo.DeleteSession(ctx, sessionID); err != nil && err != repository.ErrNotFound {
		s.log.Warn("Failed to delete completed session", "session_id", sessionID, "error", err)
	}

	club, err := s.repo.GetClub(ctx, clubID)
	clubName := ""
	if err == nil {
		clubName = club.Name
	}

	s.log.Info("Game completed", "session_id", sessionID, "club_id", clubID, "result_id", resultID)
	s.broadcast("result_saved", map[string]interface{}{
		"resultId": resultID,
		"clubId":   clubID,
		"clubName": clubName,
	})

	s.notifyCompletion(clubName, engine)

	return resultID, nil
}

// Abandon deletes a session without saving a result
func (s *GameService) Abandon(ctx context.Context, sessionID string) error {
	err := s.repo.DeleteSession(ctx, sessionID)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("game session %s not found", sessionID)
	}
	return err
}

// ActiveSessions returns the number of stored sessions
func (s *GameService) ActiveSessions(ctx context.Context) (int, error) {
	return s.repo.CountSessions(ctx)
}

// applyMove runs one sorting move against the session's engine and
// persists the result. Moves that the engine rejects (unknown category,
// full category, stale occupant) still return a state so clients can
// re-render, with the rejection carried in the result code.
func (s *GameService) applyMove(ctx context.Context, sessionID string, move func(*game.Engine) game.Result) (*MoveOutcome, error) {
	engine, clubID, err := s.loadEngine(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := move(engine)
	if result == game.ResultSuccess || result == game.ResultGameFinished {
		if err := s.saveEngine(ctx, sessionID, clubID, engine); err != nil {
			return nil, err
		}
	}

	if result == game.ResultGameFinished {
		s.broadcast("game_finished", map[string]interface{}{
			"sessionId": sessionID,
			"clubId":    clubID,
		})
	}

	return &MoveOutcome{
		Result: result,
		State:  &GameState{SessionID: sessionID, ClubID: clubID, Engine: engine},
	}, nil
}

// applyEdit runs one editor operation. EnterEditMode is the only editor
// call valid outside edit mode.
func (s *GameService) applyEdit(ctx context.Context, sessionID string, requireEditing bool, op func(*game.Engine)) (*GameState, error) {
	engine, clubID, err := s.loadEngine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if requireEditing && !engine.EditingPositions {
		return nil, ErrNotEditing
	}

	op(engine)
	if err := s.saveEngine(ctx, sessionID, clubID, engine); err != nil {
		return nil, err
	}
	return &GameState{SessionID: sessionID, ClubID: clubID, Engine: engine}, nil
}

func (s *GameService) loadEngine(ctx context.Context, sessionID string) (*game.Engine, int64, error) {
	clubID, state, err := s.repo.GetSession(ctx, sessionID)
	if err == repository.ErrNotFound {
		return nil, 0, errors.NotFoundf("game session %s not found", sessionID)
	}
	if err != nil {
		return nil, 0, err
	}

	engine, err := game.Restore(state)
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrInternal, "corrupt session state")
	}
	return engine, clubID, nil
}

func (s *GameService) saveEngine(ctx context.Context, sessionID string, clubID int64, engine *game.Engine) error {
	state, err := engine.Snapshot()
	if err != nil {
		return err
	}
	return s.repo.SaveSession(ctx, sessionID, clubID, state)
}

func (s *GameService) broadcast(event string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastGameEvent(event, payload)
	}
}

// notifyCompletion posts the finished tier list to the configured share
// chat. Notification failures are logged, never surfaced: the result is
// already saved.
func (s *GameService) notifyCompletion(clubName string, engine *game.Engine) {
	if s.telegram == nil {
		return
	}
	text := formatCompletionMessage(clubName, engine)

	go func() {
		ctx := context.Background()
		chatID, err := s.settings.GetShareChatID(ctx)
		if err != nil || chatID == "" {
			return
		}
		if err := s.telegram.SendMessage(ctx, chatID, text); err != nil {
			s.log.Warn("Failed to send completion notification", "chat_id", chatID, "error", err)
		}
	}()
}

// formatCompletionMessage renders a finished placement as a plain-text
// tier list, categories in their configured order
func formatCompletionMessage(clubName string, engine *game.Engine) string {
	var b strings.Builder
	if clubName != "" {
		fmt.Fprintf(&b, "Tier list for %s:\n", clubName)
	} else {
		b.WriteString("Tier list:\n")
	}

	names := make([]string, 0, len(engine.Categories))
	for _, cat := range engine.Categories {
		names = append(names, cat.Name)
	}
	if len(names) == 0 {
		for name := range engine.Categorized {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	for _, name := range names {
		players := engine.Categorized[name]
		labels := make([]string, len(players))
		for i, p := range players {
			labels[i] = p.Name
		}
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(name), strings.Join(labels, ", "))
	}
	return b.String()
}
