package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventVenueCreated  EventType = "venue.created"
	EventVenueUpdated  EventType = "venue.updated"
	EventVenueDeleted  EventType = "venue.deleted"
	EventArtistCreated EventType = "artist.created"
	EventArtistUpdated EventType = "artist.updated"
	EventShowCreated   EventType = "show.created"
)

const (
	EntityVenue  = "venue"
	EntityArtist = "artist"
	EntityShow   = "show"
)

// ListingEvent records one committed change to the directory
type ListingEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   uint      `json:"entity_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType EventType, entity string, entityID uint, name string) ListingEvent {
	return ListingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Entity:     entity,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
}

// PartitionKey keeps every event of one entity on the same partition
func (e ListingEvent) PartitionKey() string {
	return fmt.Sprintf("%s:%d", e.Entity, e.EntityID)
}

func (e ListingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func FromJSON(data []byte) (ListingEvent, error) {
	var e ListingEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
