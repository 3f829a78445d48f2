package selection

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// Event types published on the bus when the selection changes
const (
	EventAdded       = "selection.added"
	EventRemoved     = "selection.removed"
	EventReset       = "selection.reset"
	EventLoaded      = "selection.loaded"
	EventHeroRenamed = "selection.hero_renamed"
)

// EventTypes lists every event type the model publishes
func EventTypes() []string {
	return []string{EventAdded, EventRemoved, EventReset, EventLoaded, EventHeroRenamed}
}

// heroEntityType is the entity type of whole-session events
const heroEntityType = "hero"

// Hero identifies the session owner on session-wide events
type Hero struct {
	Name string
}

// GetID returns the hero name
func (h Hero) GetID() string {
	return h.Name
}

// GetType returns "hero"
func (h Hero) GetType() string {
	return heroEntityType
}

var (
	_ core.Entity = Hero{}
	_ core.Entity = entities.Ref{}
)

// Subscribe registers fn for every selection event type and returns the
// subscription ids
func Subscribe(bus events.EventBus, fn events.HandlerFunc) []string {
	ids := make([]string, 0, len(EventTypes()))
	for _, t := range EventTypes() {
		ids = append(ids, bus.SubscribeFunc(t, 0, fn))
	}
	return ids
}

// Unsubscribe removes subscriptions returned by Subscribe
func Unsubscribe(bus events.EventBus, ids []string) {
	for _, id := range ids {
		if err := bus.Unsubscribe(id); err != nil {
			slog.Warn("Failed to unsubscribe selection handler", "id", id, "error", err)
		}
	}
}

func (m *Model) publish(ctx context.Context, eventType string, source core.Entity) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(ctx, events.NewGameEvent(eventType, source, nil)); err != nil {
		// the change is already applied; a failing listener must not undo it
		slog.Warn("Selection event handler failed",
			"event", eventType,
			"source", source.GetID(),
			"error", err,
		)
	}
}
