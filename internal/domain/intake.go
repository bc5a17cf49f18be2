package domain

import "time"

// IntakeEntry is one logged drink. Entries are owned by the caller's
// history store; the engine only reads them.
type IntakeEntry struct {
	ID        string    `json:"id"`
	AmountMl  float64   `json:"amount_ml"`
	Timestamp time.Time `json:"timestamp"`
}

// OnLocalDay reports whether the entry falls on the same local calendar
// day as the given instant (midnight-to-midnight in day's location).
func (e IntakeEntry) OnLocalDay(day time.Time) bool {
	ey, em, ed := e.Timestamp.In(day.Location()).Date()
	dy, dm, dd := day.Date()
	return ey == dy && em == dm && ed == dd
}
