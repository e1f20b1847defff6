// Package ecs provides ECS adapters for fgui's interaction events.
//
// The primary adapter is [NewDonburiStore], which forwards stage interaction
// events (touch begin/end, click, drag start/move/end, drop) into a [Donburi]
// world as typed events. Only nodes with a non-zero EntityID are reported.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
