package handlers

// GameStartRequest represents a request to start a sorting game
type GameStartRequest struct {
	ClubID int64 `json:"club_id"`
}

// PlaceRequest represents a request to place the current player
type PlaceRequest struct {
	Category string `json:"category"`
}

// ReplaceRequest represents a request to replace a placed player with
// the current one
type ReplaceRequest struct {
	Category string `json:"category"`
	PlayerID int64  `json:"player_id"`
}

// SelectionRequest represents a request to toggle a swap selection
type SelectionRequest struct {
	PlayerID int64  `json:"player_id"`
	Category string `json:"category"`
}

// ClubCreateRequest represents a request to create a club
type ClubCreateRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// ClubUpdateRequest represents a request to update a club
type ClubUpdateRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// PlayerCreateRequest represents a request to create a player
type PlayerCreateRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// PlayerUpdateRequest represents a request to update a player
type PlayerUpdateRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// PlayerReorderRequest represents a request to reorder a club's players
type PlayerReorderRequest struct {
	PlayerIDs []int64 `json:"player_ids"`
}

// GamesStatusRequest represents a request to open or close games
type GamesStatusRequest struct {
	Open bool `json:"open"`
}

// SettingsUpdateRequest represents a request to update settings
type SettingsUpdateRequest struct {
	BotUsername string `json:"bot_username"`
	ShareChatID string `json:"share_chat_id"`
	GamesOpen   *bool  `json:"games_open"`
}

// AdminCreateRequest represents a request to add an admin user
type AdminCreateRequest struct {
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Password string `json:"password"`
}
