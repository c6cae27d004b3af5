package service

import (
	"context"
	"time"

	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/pkg/events"
)

// EventPublisher is satisfied by the NATS publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IEventEmitter interface {
	Emit(ctx context.Context, event events.Event)
}

type eventEmitter struct {
	log       logger.ILogger
	publisher EventPublisher
}

// NewEventEmitter logs every business event. The publisher is optional.
func NewEventEmitter(log logger.ILogger, publisher EventPublisher) IEventEmitter {
	return &eventEmitter{
		log:       log,
		publisher: publisher,
	}
}

func (e *eventEmitter) Emit(ctx context.Context, event events.Event) {
	details := map[string]interface{}{
		"event_type":  event.EventType(),
		"entity_type": event.EntityType(),
		"entity_id":   event.EntityID(),
	}
	if uid, ok := event.Payload()["user_id"]; ok {
		details["user_id"] = uid
	}
	e.log.Info(logger.Business, "Business event: "+event.EventType(), details)

	if e.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := e.publisher.Publish(pubCtx, event); err != nil {
		e.log.Warn(logger.Business, "Failed to publish business event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}
