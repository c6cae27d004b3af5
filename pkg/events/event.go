package events

import "time"

const (
	UserCreated    = "user.created"
	SessionCreated = "session.created"
	TurnPersisted  = "turn.persisted"
	AuthLogin      = "auth.login"
)

// Event defines the contract for all business events.
type Event interface {
	// EventType returns the dotted event code (e.g. "user.created").
	EventType() string

	// EntityType and EntityID identify the row the event is about.
	EntityType() string
	EntityID() int64

	// Payload returns extra data associated with the event.
	Payload() map[string]interface{}

	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Entity     string
	ID         int64
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) EntityType() string {
	return e.Entity
}

func (e BaseEvent) EntityID() int64 {
	return e.ID
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserCreated(userID int64, email string) BaseEvent {
	return BaseEvent{
		Type:       UserCreated,
		Entity:     "usuario",
		ID:         userID,
		Data:       map[string]interface{}{"user_id": userID, "email": email},
		OccurredAt: time.Now(),
	}
}

func NewSessionCreated(userID, sessionID int64, purposeID int16) BaseEvent {
	return BaseEvent{
		Type:       SessionCreated,
		Entity:     "sesion_asesoria",
		ID:         sessionID,
		Data:       map[string]interface{}{"user_id": userID, "session_id": sessionID, "purpose_id": purposeID},
		OccurredAt: time.Now(),
	}
}

func NewTurnPersisted(userID, sessionID, detailID int64, fallback bool) BaseEvent {
	return BaseEvent{
		Type:   TurnPersisted,
		Entity: "sesion_asesoria_detalle",
		ID:     detailID,
		Data: map[string]interface{}{
			"user_id":    userID,
			"session_id": sessionID,
			"fallback":   fallback,
		},
		OccurredAt: time.Now(),
	}
}

func NewAuthLogin(userID int64, success bool) BaseEvent {
	return BaseEvent{
		Type:       AuthLogin,
		Entity:     "usuario",
		ID:         userID,
		Data:       map[string]interface{}{"user_id": userID, "success": success},
		OccurredAt: time.Now(),
	}
}
