// Package seed populates the store with the canonical demo data.
package seed

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"

	"vulnsocial/internal/models"
	"vulnsocial/internal/store"
)

//go:embed fixture.yml
var fixtureYAML []byte

// Options configuration for the seeder.
type Options struct {
	// ExtraUsers adds fake accounts after the canonical five. The profile
	// viewer's hardcoded id range does not grow with them, so extras are
	// only reachable through search and the admin listing.
	ExtraUsers int
}

type fixture struct {
	Users []*models.User `yaml:"users"`
	Posts []*models.Post `yaml:"posts"`
}

// Load parses the embedded fixture.
func Load() ([]*models.User, []*models.Post, error) {
	var fx fixture
	if err := yaml.Unmarshal(fixtureYAML, &fx); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return fx.Users, fx.Posts, nil
}

// Apply seeds the store with the fixture data plus any extra fake users.
// The first fixture record must stay first: the simulated injection bypass
// logs in as whatever sits at the front of the user sequence.
func Apply(st *store.Store, opts Options) error {
	users, posts, err := Load()
	if err != nil {
		return err
	}

	for _, u := range users {
		st.AppendUser(u)
	}
	for _, p := range posts {
		st.AppendPost(p)
	}
	log.Printf("🌱 Seeded %d users and %d posts", len(users), len(posts))

	if opts.ExtraUsers > 0 {
		nextID := uint(len(users)) + 1
		for i := 0; i < opts.ExtraUsers; i++ {
			st.AppendUser(&models.User{
				ID:       nextID,
				Username: gofakeit.Username(),
				Password: gofakeit.Password(true, true, true, false, false, 10),
				Email:    gofakeit.Email(),
				Bio:      gofakeit.Sentence(6),
				Role:     models.RoleUser,
			})
			nextID++
		}
		log.Printf("✓ %d extra fake users created", opts.ExtraUsers)
	}

	return nil
}
