// Package ecs provides ECS adapters for fgui.
package ecs

import (
	"github.com/phanxgames/fgui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for fgui interaction events.
// Subscribe to this in your ECS systems to receive touch, click, drag and
// drop events of nodes that carry an EntityID.
var InteractionEventType = events.NewEventType[fgui.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) fgui.EntityStore {
	return &donburiStore{world: world}
}

// EmitEvent publishes event to the world. It is delivered on the next
// ProcessEvents.
func (s *donburiStore) EmitEvent(event fgui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// SubscribeType subscribes fn to interaction events of a single type
// (fgui.EventClick, fgui.EventDrop, ...).
func SubscribeType(world donburi.World, typ string, fn func(donburi.World, fgui.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e fgui.InteractionEvent) {
		if e.Type == typ {
			fn(w, e)
		}
	})
}
