package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ekazakov/tiersort/internal/errors"
	"github.com/ekazakov/tiersort/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS clubs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			logo_url TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			club_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			image_url TEXT,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			telegram_id TEXT UNIQUE NOT NULL,
			username TEXT,
			role TEXT NOT NULL DEFAULT 'admin',
			added_by TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			club_id INTEGER NOT NULL,
			state TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS game_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			club_id INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS game_result_entries (
			result_id INTEGER NOT NULL,
			category_name TEXT NOT NULL,
			player_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			FOREIGN KEY (result_id) REFERENCES game_results(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_club ON players(club_id, display_order)`,
		`CREATE INDEX IF NOT EXISTS idx_results_club ON game_results(club_id)`,
		`CREATE INDEX IF NOT EXISTS idx_result_entries ON game_result_entries(result_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_club ON sessions(club_id)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	defaultSettings := map[string]string{
		"games_open":   "true",
		"bot_username": "",
	}

	for key, value := range defaultSettings {
		_, err := r.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// ==================== Club Methods ====================

// ListClubs returns all clubs ordered by name
func (r *Repository) ListClubs(ctx context.Context) ([]models.Club, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, COALESCE(logo_url, '') FROM clubs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

// GetClub retrieves a club by id
func (r *Repository) GetClub(ctx context.Context, id int64) (*models.Club, error) {
	var c models.Club
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(logo_url, '') FROM clubs WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.LogoURL)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("club %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateClub inserts a new club
func (r *Repository) CreateClub(ctx context.Context, name, logoURL string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO clubs (name, logo_url) VALUES (?, ?)`, name, logoURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateClub updates a club's name and logo
func (r *Repository) UpdateClub(ctx context.Context, id int64, name, logoURL string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clubs SET name = ?, logo_url = ? WHERE id = ?`, name, logoURL, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res, "club", id)
}

// DeleteClub removes a club; players, sessions and results cascade
func (r *Repository) DeleteClub(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clubs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res, "club", id)
}

// ==================== Player Methods ====================

// ListPlayersByClub returns the club's players in display order. This
// order defines the game queue.
func (r *Repository) ListPlayersByClub(ctx context.Context, clubID int64) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, club_id, name, COALESCE(image_url, '')
		 FROM players WHERE club_id = ? ORDER BY display_order, id`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.ClubID, &p.Name, &p.ImageURL); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayer retrieves a player by id
func (r *Repository) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRowContext(ctx,
		`SELECT id, club_id, name, COALESCE(image_url, '') FROM players WHERE id = ?`, id).
		Scan(&p.ID, &p.ClubID, &p.Name, &p.ImageURL)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("player %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePlayer appends a player at the end of the club's display order
func (r *Repository) CreatePlayer(ctx context.Context, clubID int64, name, imageURL string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO players (club_id, name, image_url, display_order)
		 VALUES (?, ?, ?, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM players WHERE club_id = ?))`,
		clubID, name, imageURL, clubID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePlayer updates a player's name and image
func (r *Repository) UpdatePlayer(ctx context.Context, id int64, name, imageURL string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET name = ?, image_url = ? WHERE id = ?`, name, imageURL, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res, "player", id)
}

// DeletePlayer removes a player
func (r *Repository) DeletePlayer(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res, "player", id)
}

// ReorderPlayers rewrites the display order of a club's players. The slice
// must contain every player id of the club exactly once.
func (r *Repository) ReorderPlayers(ctx context.Context, clubID int64, orderedIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for pos, id := range orderedIDs {
		res, err := tx.ExecContext(ctx,
			`UPDATE players SET display_order = ? WHERE id = ? AND club_id = ?`,
			pos+1, id, clubID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return errors.InvalidInputf("player %d does not belong to club %d", id, clubID)
		}
	}

	return tx.Commit()
}

// ==================== Admin Methods ====================

// ListAdmins returns all admin users
func (r *Repository) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, telegram_id, COALESCE(username, ''), role, COALESCE(added_by, ''), created_at
		 FROM admins ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.AdminUser
	for rows.Next() {
		var a models.AdminUser
		if err := rows.Scan(&a.ID, &a.TelegramID, &a.Username, &a.Role, &a.AddedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// GetAdminByTelegramID looks up an admin by Telegram user id
func (r *Repository) GetAdminByTelegramID(ctx context.Context, telegramID string) (*models.AdminUser, error) {
	var a models.AdminUser
	err := r.db.QueryRowContext(ctx,
		`SELECT id, telegram_id, COALESCE(username, ''), role, COALESCE(added_by, ''), created_at
		 FROM admins WHERE telegram_id = ?`, telegramID).
		Scan(&a.ID, &a.TelegramID, &a.Username, &a.Role, &a.AddedBy, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin inserts a new admin user
func (r *Repository) CreateAdmin(ctx context.Context, telegramID, username, role, addedBy string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (telegram_id, username, role, added_by) VALUES (?, ?, ?, ?)`,
		telegramID, username, role, addedBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteAdmin removes an admin user
func (r *Repository) DeleteAdmin(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res, "admin", id)
}

// ==================== Session Methods ====================

// SaveSession upserts a session snapshot
func (r *Repository) SaveSession(ctx context.Context, id string, clubID int64, state []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, club_id, state) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP`,
		id, clubID, string(state))
	return err
}

// GetSession retrieves a session snapshot
func (r *Repository) GetSession(ctx context.Context, id string) (int64, []byte, error) {
	var clubID int64
	var state string
	err := r.db.QueryRowContext(ctx,
		`SELECT club_id, state FROM sessions WHERE id = ?`, id).Scan(&clubID, &state)
	if err == sql.ErrNoRows {
		return 0, nil, ErrNotFound
	}
	if err != nil {
		return 0, nil, err
	}
	return clubID, []byte(state), nil
}

// DeleteSession removes a session snapshot
func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountSessions returns the number of stored sessions
func (r *Repository) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

// ==================== Result Methods ====================

// SaveGameResult stores a finished game's flattened placement in one
// transaction: a result row plus one entry per placed player.
func (r *Repository) SaveGameResult(ctx context.Context, sessionID string, clubID int64, placement map[string][]int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO game_results (session_id, club_id) VALUES (?, ?)`, sessionID, clubID)
	if err != nil {
		return 0, err
	}
	resultID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for category, playerIDs := range placement {
		for pos, playerID := range playerIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO game_result_entries (result_id, category_name, player_id, position)
				 VALUES (?, ?, ?, ?)`,
				resultID, category, playerID, pos+1)
			if err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return resultID, nil
}

// CountResultsByClub returns how many finished games a club has stored
func (r *Repository) CountResultsByClub(ctx context.Context, clubID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM game_results WHERE club_id = ?`, clubID).Scan(&count)
	return count, err
}

// GetCategoryHits aggregates how often each player landed in each category
// across all of a club's stored results.
func (r *Repository) GetCategoryHits(ctx context.Context, clubID int64) ([]CategoryHit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.name, COALESCE(p.image_url, ''), e.category_name, COUNT(*)
		 FROM game_result_entries e
		 JOIN game_results r ON r.id = e.result_id
		 JOIN players p ON p.id = e.player_id
		 WHERE r.club_id = ?
		 GROUP BY p.id, e.category_name
		 ORDER BY e.category_name, COUNT(*) DESC`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []CategoryHit
	for rows.Next() {
		var h CategoryHit
		if err := rows.Scan(&h.PlayerID, &h.PlayerName, &h.PlayerImage, &h.CategoryName, &h.Hits); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// GetGameResult retrieves a stored result with its placement entries
func (r *Repository) GetGameResult(ctx context.Context, id int64) (*models.GameResult, error) {
	var result models.GameResult
	err := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, club_id, created_at FROM game_results WHERE id = ?`, id).
		Scan(&result.ID, &result.SessionID, &result.ClubID, &result.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT category_name, player_id FROM game_result_entries
		 WHERE result_id = ? ORDER BY category_name, position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result.Placement = make(map[string][]int64)
	for rows.Next() {
		var category string
		var playerID int64
		if err := rows.Scan(&category, &playerID); err != nil {
			return nil, err
		}
		result.Placement[category] = append(result.Placement[category], playerID)
	}
	return &result, rows.Err()
}

// ==================== Settings Methods ====================

// GetSetting retrieves a setting value by key
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting upserts a setting value
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// requireRowsAffected converts a zero-row update/delete into a NotFound error
func requireRowsAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFoundf("%s %d not found", entity, id)
	}
	return nil
}
