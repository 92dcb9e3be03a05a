package team

import (
	"context"
	"testing"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
	teamrepo "web420-api/internal/repository/team"

	"github.com/stretchr/testify/require"
)

func TestCreate_DefaultsPlayers(t *testing.T) {
	svc := New(teamrepo.NewDocStore(docstore.NewMemory()))
	team, err := svc.Create(context.Background(), CreateInput{Name: "Hawks", Mascot: "Falcon"})
	require.NoError(t, err)
	require.Equal(t, []domain.Player{}, team.Players)
}

func TestAddPlayer_AppendsAndEchoes(t *testing.T) {
	svc := New(teamrepo.NewDocStore(docstore.NewMemory()))
	ctx := context.Background()

	salary := 50000.0
	team, err := svc.Create(ctx, CreateInput{Name: "Hawks", Mascot: "Falcon", Players: []domain.Player{{FirstName: "Ann", LastName: "Cho"}}})
	require.NoError(t, err)

	p, err := svc.AddPlayer(ctx, team.ID.Hex(), domain.Player{FirstName: "Amy", LastName: "Lee", Salary: &salary})
	require.NoError(t, err)
	require.Equal(t, "Amy", p.FirstName)

	players, err := svc.Players(ctx, team.ID.Hex())
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.Equal(t, "Ann", players[0].FirstName)
	require.Equal(t, "Amy", players[1].FirstName)
}

func TestAddPlayer_UnknownTeam(t *testing.T) {
	svc := New(teamrepo.NewDocStore(docstore.NewMemory()))
	_, err := svc.AddPlayer(context.Background(), "65f000000000000000000000", domain.Player{FirstName: "A", LastName: "B"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AddPlayer(context.Background(), "bogus", domain.Player{FirstName: "A", LastName: "B"})
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestDelete(t *testing.T) {
	svc := New(teamrepo.NewDocStore(docstore.NewMemory()))
	ctx := context.Background()

	team, err := svc.Create(ctx, CreateInput{Name: "Owls", Mascot: "Owl"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, team.ID.Hex()))
	require.ErrorIs(t, svc.Delete(ctx, team.ID.Hex()), domain.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
