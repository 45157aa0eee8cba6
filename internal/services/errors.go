package services

// Service errors
var (
	ErrGamesClosed        = &ServiceError{Message: "games are currently closed"}
	ErrGameNotFinished    = &ServiceError{Message: "game is not finished yet"}
	ErrNoPlayers          = &ServiceError{Message: "club has no players to sort"}
	ErrNotEditing         = &ServiceError{Message: "position editing is not active"}
	ErrClubNameRequired   = &ServiceError{Message: "club name is required"}
	ErrPlayerNameRequired = &ServiceError{Message: "player name is required"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
