package team

import (
	"context"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
	teamrepo "web420-api/internal/repository/team"
)

type Service struct {
	repo teamrepo.Repository
}

func New(repo teamrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name    string
	Mascot  string
	Players []domain.Player
}

func (s *Service) List(ctx context.Context) ([]domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Team, error) {
	players := in.Players
	if players == nil {
		players = []domain.Player{}
	}
	return s.repo.Create(ctx, domain.Team{
		Name:    in.Name,
		Mascot:  in.Mascot,
		Players: players,
	})
}

// Players returns the roster of the team in insertion order.
func (s *Service) Players(ctx context.Context, id string) ([]domain.Player, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.Players, nil
}

// AddPlayer appends p to the end of the team's roster and returns p.
func (s *Service) AddPlayer(ctx context.Context, id string, p domain.Player) (*domain.Player, error) {
	err := docstore.RetryOnConflict(ctx, docstore.DefaultAttempts, func() error {
		t, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		t.Players = append(t.Players, p)
		_, err = s.repo.Save(ctx, *t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
