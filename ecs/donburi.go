package ecs

import (
	"github.com/phanxgames/magnetic"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverEventType is the Donburi event type for magnetic hover edges.
var HoverEventType = events.NewEventType[magnetic.HoverEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Hover edges are published to HoverEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) magnetic.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event magnetic.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}
