package clock

import "time"

// Clock supplies the current time to services so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}

// DayOf truncates t to midnight in its own location. The truncated value
// is the attendance uniqueness key for that employee and calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
