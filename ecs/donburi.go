package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive swipes, taps, pinches and
// shakes.
var GestureEventType = events.NewEventType[gesture.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) gesture.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(e gesture.Event) {
	GestureEventType.Publish(s.world, e)
}

// StatsData tallies processed gestures.
type StatsData struct {
	Counts    map[gesture.Kind]int
	Last      gesture.Event
	HasLast   bool
	LastScale float64
}

// Stats is the component holding StatsData.
var Stats = donburi.NewComponentType[StatsData]()

// TrackStats creates an entity carrying a Stats component and subscribes it
// to GestureEventType. The tally updates when ProcessEvents runs.
func TrackStats(world donburi.World) donburi.Entity {
	entity := world.Create(Stats)
	Stats.Set(world.Entry(entity), &StatsData{Counts: make(map[gesture.Kind]int)})

	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		if !w.Valid(entity) {
			return
		}
		st := Stats.Get(w.Entry(entity))
		st.Counts[e.Kind]++
		st.Last = e
		st.HasLast = true
		if e.Kind == gesture.KindPinch {
			st.LastScale = e.Scale
		}
	})
	return entity
}
