// Package roster implements the participant-list operations behind enroll and
// withdraw. Rosters are ordered slices of email strings; insertion order is
// preserved and duplicates are rejected here rather than by the data structure.
package roster

// Contains reports whether email is already on the roster.
func Contains(participants []string, email string) bool {
	for _, p := range participants {
		if p == email {
			return true
		}
	}
	return false
}

// Add appends email to the roster. Returns ErrAlreadyRegistered if email is
// already present; the input slice is never mutated on failure.
func Add(participants []string, email string) ([]string, error) {
	if Contains(participants, email) {
		return participants, ErrAlreadyRegistered
	}
	return append(participants, email), nil
}

// Remove deletes email from the roster, preserving the order of the remaining
// entries. Returns ErrNotRegistered if email is absent.
func Remove(participants []string, email string) ([]string, error) {
	for i, p := range participants {
		if p == email {
			out := make([]string, 0, len(participants)-1)
			out = append(out, participants[:i]...)
			out = append(out, participants[i+1:]...)
			return out, nil
		}
	}
	return participants, ErrNotRegistered
}
