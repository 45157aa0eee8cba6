package models

// Club represents a football club whose squad can be sorted
type Club struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// Player represents a squad member of a club
type Player struct {
	ID       int64  `json:"id"`
	ClubID   int64  `json:"club_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Category is a tier bucket with a fixed number of slots
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Slots int    `json:"slots"`
}

// CategorizedPlayers maps a category name to its placed players in display order
type CategorizedPlayers map[string][]Player

// AdminUser represents a Telegram user allowed to manage the app
type AdminUser struct {
	ID         int64  `json:"id"`
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	Role       string `json:"role"`
	AddedBy    string `json:"added_by,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// GameResult is a finished game's flattened placement, as persisted
type GameResult struct {
	ID        int64              `json:"id"`
	SessionID string             `json:"session_id"`
	ClubID    int64              `json:"club_id"`
	Placement map[string][]int64 `json:"placement"` // category name -> player ids in display order
	CreatedAt string             `json:"created_at"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
