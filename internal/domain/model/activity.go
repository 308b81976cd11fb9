// Package model contains domain records passed between layers.
package model

// Activity is a named extracurricular offering with an ordered participant roster.
// Name is the registry key; description, schedule and capacity are immutable
// after initial load.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone returns a deep copy so callers cannot mutate the registry's roster.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}

// SpotsLeft reports the advisory remaining capacity. It can go negative since
// capacity is never enforced on signup.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}
