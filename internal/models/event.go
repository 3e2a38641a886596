package models

// Catalog event types published to Kafka.
const (
	EventModuleCreated   = "module.created"
	EventModuleUpdated   = "module.updated"
	EventModuleDeleted   = "module.deleted"
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
	EventUserRegistered  = "user.registered"
)

// CatalogEvent represents a change in the catalog, keyed by EventID.
type CatalogEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the change.
	UserID    string `json:"user_id,omitempty"`
	ModuleID  int64  `json:"module_id,omitempty"`
}
