package dailystatus

import "time"

// TimeOfDay buckets the local hour for greetings.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayAt returns morning for 05:00-11:59, afternoon for 12:00-17:59
// and evening otherwise.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 18:
		return Afternoon
	default:
		return Evening
	}
}

// Greeting is the English salutation for the bucket.
func (d TimeOfDay) Greeting() string {
	switch d {
	case Morning:
		return "Good Morning"
	case Afternoon:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
