// Package ecs provides ECS adapters for wirecanvas camera events.
//
// The primary adapter is [NewDonburiObserver], which bridges camera changes
// made by an input handler (pans and zooms) into a [Donburi] world as typed
// events. Subscribe to [CameraEventType] in your ECS systems to receive them.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world)
//	game.Input().SetObserver(obs)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
