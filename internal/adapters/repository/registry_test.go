package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/pandacall/skills-getting-started-with-github-copilot/internal/adapters/repository"
	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/model"
	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/roster"
	"github.com/smartystreets/goconvey/convey"
)

func newSeededRegistry(t *testing.T) *repository.Registry {
	t.Helper()
	r, err := repository.NewRegistry(context.Background())
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return r
}

func TestRegistrySeed(t *testing.T) {
	convey.Convey("Given a registry built from the default seed", t, func() {
		ctx := context.Background()
		r := newSeededRegistry(t)

		convey.Convey("Then it should hold nine activities", func() {
			convey.So(r.Count(ctx), convey.ShouldEqual, 9)
		})

		convey.Convey("And Chess Club should carry its fixture values", func() {
			a, err := r.Get(ctx, "Chess Club")
			convey.So(err, convey.ShouldBeNil)
			convey.So(a.Description, convey.ShouldEqual, "Learn strategies and compete in chess tournaments")
			convey.So(a.Schedule, convey.ShouldEqual, "Fridays, 3:30 PM - 5:00 PM")
			convey.So(a.MaxParticipants, convey.ShouldEqual, 12)
			convey.So(a.Participants, convey.ShouldResemble, []string{
				"michael@mergington.edu", "daniel@mergington.edu",
			})
			convey.So(a.SpotsLeft(), convey.ShouldEqual, 10)
		})

		convey.Convey("And name lookup should be case- and whitespace-sensitive", func() {
			_, err := r.Get(ctx, "chess club")
			convey.So(err, convey.ShouldEqual, repository.ErrActivityNotFound)
			_, err = r.Get(ctx, "Chess Club ")
			convey.So(err, convey.ShouldEqual, repository.ErrActivityNotFound)
		})
	})
}

func TestRegistrySignup(t *testing.T) {
	convey.Convey("Given a seeded registry", t, func() {
		ctx := context.Background()
		r := newSeededRegistry(t)

		convey.Convey("When signing up a new student for Chess Club", func() {
			err := r.Signup(ctx, "Chess Club", "new@mergington.edu")

			convey.Convey("Then the roster should grow by exactly one", func() {
				convey.So(err, convey.ShouldBeNil)
				a, err := r.Get(ctx, "Chess Club")
				convey.So(err, convey.ShouldBeNil)
				convey.So(a.Participants, convey.ShouldHaveLength, 3)
				convey.So(a.Participants[2], convey.ShouldEqual, "new@mergington.edu")
				convey.So(a.SpotsLeft(), convey.ShouldEqual, 9)
			})

			convey.Convey("And no other activity's roster should change", func() {
				a, err := r.Get(ctx, "Tennis Club")
				convey.So(err, convey.ShouldBeNil)
				convey.So(a.Participants, convey.ShouldResemble, []string{"chris@mergington.edu"})
			})
		})

		convey.Convey("When signing up a student who is already on the roster", func() {
			err := r.Signup(ctx, "Chess Club", "michael@mergington.edu")

			convey.Convey("Then it should fail and leave the roster unchanged", func() {
				convey.So(err, convey.ShouldEqual, roster.ErrAlreadyRegistered)
				a, _ := r.Get(ctx, "Chess Club")
				convey.So(a.Participants, convey.ShouldHaveLength, 2)
			})
		})

		convey.Convey("When signing up for an unknown activity", func() {
			err := r.Signup(ctx, "Fake Club", "a@mergington.edu")

			convey.Convey("Then it should fail with ErrActivityNotFound", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrActivityNotFound)
			})
		})

		convey.Convey("When enrolling past capacity", func() {
			for i := 0; i < 20; i++ {
				email := string(rune('a'+i)) + "@mergington.edu"
				convey.So(r.Signup(ctx, "Chess Club", email), convey.ShouldBeNil)
			}

			convey.Convey("Then the registry should allow over-enrollment", func() {
				a, _ := r.Get(ctx, "Chess Club")
				convey.So(len(a.Participants), convey.ShouldEqual, 22)
				convey.So(a.SpotsLeft(), convey.ShouldBeLessThan, 0)
			})
		})
	})
}

func TestRegistryUnregister(t *testing.T) {
	convey.Convey("Given a seeded registry", t, func() {
		ctx := context.Background()
		r := newSeededRegistry(t)

		convey.Convey("When unregistering an existing participant", func() {
			err := r.Unregister(ctx, "Chess Club", "michael@mergington.edu")

			convey.Convey("Then only that participant should be removed", func() {
				convey.So(err, convey.ShouldBeNil)
				a, _ := r.Get(ctx, "Chess Club")
				convey.So(a.Participants, convey.ShouldResemble, []string{"daniel@mergington.edu"})
			})
		})

		convey.Convey("When unregistering a student who is not registered", func() {
			err := r.Unregister(ctx, "Chess Club", "ghost@mergington.edu")

			convey.Convey("Then it should fail and leave the roster unchanged", func() {
				convey.So(err, convey.ShouldEqual, roster.ErrNotRegistered)
				a, _ := r.Get(ctx, "Chess Club")
				convey.So(a.Participants, convey.ShouldHaveLength, 2)
			})
		})

		convey.Convey("When unregistering from an unknown activity", func() {
			err := r.Unregister(ctx, "Fake Club", "a@mergington.edu")

			convey.Convey("Then it should fail with ErrActivityNotFound", func() {
				convey.So(err, convey.ShouldEqual, repository.ErrActivityNotFound)
			})
		})

		convey.Convey("When signing up and then unregistering the same email", func() {
			before, _ := r.Get(ctx, "Programming Class")
			convey.So(r.Signup(ctx, "Programming Class", "trip@mergington.edu"), convey.ShouldBeNil)
			convey.So(r.Unregister(ctx, "Programming Class", "trip@mergington.edu"), convey.ShouldBeNil)

			convey.Convey("Then the roster should return to its prior state", func() {
				after, _ := r.Get(ctx, "Programming Class")
				convey.So(after.Participants, convey.ShouldResemble, before.Participants)
			})
		})
	})
}

func TestRegistryList(t *testing.T) {
	convey.Convey("Given a seeded registry", t, func() {
		ctx := context.Background()
		r := newSeededRegistry(t)

		convey.Convey("When listing activities", func() {
			listed := r.List(ctx)

			convey.Convey("Then every activity should be present with its fields", func() {
				convey.So(listed, convey.ShouldHaveLength, 9)
				convey.So(listed, convey.ShouldContainKey, "Chess Club")
				convey.So(listed, convey.ShouldContainKey, "Science Olympiad")
				for _, a := range listed {
					convey.So(a.Description, convey.ShouldNotBeEmpty)
					convey.So(a.Schedule, convey.ShouldNotBeEmpty)
					convey.So(a.MaxParticipants, convey.ShouldBeGreaterThan, 0)
				}
			})

			convey.Convey("And mutating the snapshot should not touch the registry", func() {
				chess := listed["Chess Club"]
				chess.Participants[0] = "tampered@mergington.edu"
				a, _ := r.Get(ctx, "Chess Club")
				convey.So(a.Participants[0], convey.ShouldEqual, "michael@mergington.edu")
			})
		})

		convey.Convey("When asking for aggregate counts", func() {
			convey.Convey("Then participant totals should match the seed", func() {
				convey.So(r.ParticipantCount(ctx), convey.ShouldEqual, 14)
				convey.So(r.SpotsAvailable(ctx), convey.ShouldEqual, 162-14)
			})
		})
	})
}

func TestRegistrySeedFile(t *testing.T) {
	convey.Convey("Given a YAML seed file", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "seed.yaml")
		yamlContent := `
Book Club:
  description: Read and discuss books
  schedule: Mondays, 3:30 PM - 4:30 PM
  max_participants: 10
  participants:
    - reader@mergington.edu
`
		convey.So(os.WriteFile(path, []byte(yamlContent), 0o600), convey.ShouldBeNil)

		convey.Convey("When building a registry from it", func() {
			r, err := repository.NewRegistry(ctx, repository.WithSeedFile(path))

			convey.Convey("Then the file contents should replace the default seed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(r.Count(ctx), convey.ShouldEqual, 1)
				a, err := r.Get(ctx, "Book Club")
				convey.So(err, convey.ShouldBeNil)
				convey.So(a.MaxParticipants, convey.ShouldEqual, 10)
				convey.So(a.Participants, convey.ShouldResemble, []string{"reader@mergington.edu"})
			})
		})

		convey.Convey("When the seed file is missing", func() {
			_, err := repository.NewRegistry(ctx, repository.WithSeedFile(filepath.Join(dir, "absent.yaml")))

			convey.Convey("Then construction should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestRegistryCustomSeed(t *testing.T) {
	convey.Convey("Given a custom in-memory seed", t, func() {
		ctx := context.Background()
		seed := []model.Activity{{
			Name:            "Debate Team",
			Description:     "Argue both sides",
			Schedule:        "Thursdays",
			MaxParticipants: 8,
		}}

		convey.Convey("When building a registry with it", func() {
			r, err := repository.NewRegistry(ctx, repository.WithSeed(seed))

			convey.Convey("Then the registry should contain only the custom activity", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(r.Count(ctx), convey.ShouldEqual, 1)
				a, err := r.Get(ctx, "Debate Team")
				convey.So(err, convey.ShouldBeNil)
				convey.So(a.Participants, convey.ShouldBeEmpty)
			})
		})
	})
}
