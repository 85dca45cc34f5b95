// Package ecs bridges recognized gestures into a [Donburi] world.
//
// [NewDonburiSink] publishes every forwarded gesture as a typed Donburi event.
// Subscribe to [GestureEventType] in your ECS systems to receive them, or
// call [TrackStats] to keep a per-kind tally on a singleton entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	gesture.Attach(region, gesture.Forward("about", sink), &cfg)
//	// each tick:
//	ecs.GestureEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
