package models

// Entities and operations carried by Event.
const (
	EntityUser  = "user"
	EntityStats = "stats"

	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Event represents a successful write, published to the event stream.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the write.
	Entity    string `json:"entity"`    // Entity is "user" or "stats".
	Operation string `json:"operation"` // Operation is "create", "update" or "delete".
	EntityID  int64  `json:"entity_id"` // EntityID is the primary key of the written row.
	UserID    int64  `json:"user_id"`   // UserID is the user the row belongs to.
}
