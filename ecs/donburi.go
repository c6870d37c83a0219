package ecs

import (
	"github.com/phanxgames/wirecanvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CameraEventType is the Donburi event type for wirecanvas camera events.
var CameraEventType = events.NewEventType[wirecanvas.CameraEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a CameraObserver backed by a Donburi world.
// Events are published to CameraEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) wirecanvas.CameraObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) CameraChanged(event wirecanvas.CameraEvent) {
	CameraEventType.Publish(o.world, event)
}
