package handlers

// IDResponse is the response for create operations
type IDResponse struct {
	ID int64 `json:"id"`
}

// MoveResponse pairs a move's result code with the session state
type MoveResponse struct {
	Result string      `json:"result"`
	State  interface{} `json:"state"`
}

// UndoResponse is the response for an undo request
type UndoResponse struct {
	Undone bool        `json:"undone"`
	State  interface{} `json:"state"`
}

// SwapResponse is the response for a swap request
type SwapResponse struct {
	Swapped bool        `json:"swapped"`
	State   interface{} `json:"state"`
}

// CompleteResponse is the response for completing a game
type CompleteResponse struct {
	ResultID int64 `json:"result_id"`
}

// AdminStatsResponse holds the admin dashboard counters
type AdminStatsResponse struct {
	Clubs          int `json:"clubs"`
	Players        int `json:"players"`
	GamesPlayed    int `json:"games_played"`
	ActiveSessions int `json:"active_sessions"`
}

// GamesStatusResponse is the response for games status changes
type GamesStatusResponse struct {
	Open bool `json:"open"`
}

// ShareLinkResponse is the response for a club share link request
type ShareLinkResponse struct {
	Link string `json:"link"`
}
