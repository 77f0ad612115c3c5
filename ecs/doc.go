// Package ecs provides ECS adapters for magnetic's hover events.
//
// The primary adapter is [NewDonburiStore], which publishes every hover edge
// (enter and leave) of the controllers attached to a host into a [Donburi]
// world as typed events. Subscribe to [HoverEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
