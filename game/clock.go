package game

import "time"

// Clock abstracts time for the Loop so tests can drive frames manually.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// realClock is the wall clock used outside tests.
type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
