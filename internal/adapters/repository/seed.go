package repository

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/model"
)

// DefaultSeed returns the nine fixed activities the registry starts with.
func DefaultSeed() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team for intramural and varsity play",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis skills and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"chris@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"maya@mergington.edu", "james@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Design and build robots for competitions",
			Schedule:        "Mondays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Compete in science competitions and experiments",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"ava@mergington.edu"},
		},
	}
}

// seedActivity mirrors the YAML shape of one seed-file entry.
type seedActivity struct {
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// LoadSeedFile reads a YAML mapping of activity name to activity fields,
// in the same shape GET /activities returns.
func LoadSeedFile(path string) ([]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	raw := map[string]seedActivity{}
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no activities in %s", ErrInvalidSeed, path)
	}

	seed := make([]model.Activity, 0, len(raw))
	for name, s := range raw {
		if s.MaxParticipants <= 0 {
			return nil, fmt.Errorf("%w: %s: max_participants must be positive", ErrInvalidSeed, name)
		}
		seed = append(seed, model.Activity{
			Name:            name,
			Description:     s.Description,
			Schedule:        s.Schedule,
			MaxParticipants: s.MaxParticipants,
			Participants:    s.Participants,
		})
	}
	return seed, nil
}
