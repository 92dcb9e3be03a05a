// Package seed loads demo data for manual testing.
package seed

import (
	"context"
	"fmt"

	"web420-api/internal/domain"
	composersvc "web420-api/internal/service/composer"
	teamsvc "web420-api/internal/service/team"
)

type Composers interface {
	List(ctx context.Context) ([]domain.Composer, error)
	Create(ctx context.Context, in composersvc.CreateInput) (*domain.Composer, error)
}

type Teams interface {
	List(ctx context.Context) ([]domain.Team, error)
	Create(ctx context.Context, in teamsvc.CreateInput) (*domain.Team, error)
}

// Result counts what Apply inserted.
type Result struct {
	Composers int
	Teams     int
}

var demoComposers = []composersvc.CreateInput{
	{FirstName: "Ludwig", LastName: "van Beethoven"},
	{FirstName: "Clara", LastName: "Schumann"},
	{FirstName: "Johann Sebastian", LastName: "Bach"},
	{FirstName: "Hildegard", LastName: "von Bingen"},
	{FirstName: "Florence", LastName: "Price"},
}

func salary(v float64) *float64 { return &v }

var demoTeams = []teamsvc.CreateInput{
	{
		Name:   "Hawks",
		Mascot: "Falcon",
		Players: []domain.Player{
			{FirstName: "Amy", LastName: "Lee", Salary: salary(50000)},
			{FirstName: "Bo", LastName: "Park", Salary: salary(47500)},
		},
	},
	{
		Name:   "Owls",
		Mascot: "Owl",
	},
}

// Apply inserts the demo composers and teams. A collection that already has
// documents is left alone, so running it twice is harmless.
func Apply(ctx context.Context, composers Composers, teams Teams) (Result, error) {
	var res Result

	existing, err := composers.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list composers: %w", err)
	}
	if len(existing) == 0 {
		for _, c := range demoComposers {
			if _, err := composers.Create(ctx, c); err != nil {
				return res, fmt.Errorf("create composer %s %s: %w", c.FirstName, c.LastName, err)
			}
			res.Composers++
		}
	}

	existingTeams, err := teams.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list teams: %w", err)
	}
	if len(existingTeams) == 0 {
		for _, t := range demoTeams {
			if _, err := teams.Create(ctx, t); err != nil {
				return res, fmt.Errorf("create team %s: %w", t.Name, err)
			}
			res.Teams++
		}
	}

	return res, nil
}
