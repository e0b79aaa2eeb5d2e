package components

import "github.com/yohamta/donburi"

// ClockData is the explicit simulation time singleton. Systems read Now and
// DT from here instead of a live clock, so ticks are deterministic.
type ClockData struct {
	Now float64 // seconds since session start
	DT  float64 // tick duration in seconds
}

var Clock = donburi.NewComponentType[ClockData]()
