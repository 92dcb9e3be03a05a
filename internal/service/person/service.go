package person

import (
	"context"

	"web420-api/internal/domain"
	personrepo "web420-api/internal/repository/person"
)

type Service struct {
	repo personrepo.Repository
}

func New(repo personrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Person, error) {
	return s.repo.List(ctx)
}

// Create stores p as given, nested roles and dependents included.
func (s *Service) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	return s.repo.Create(ctx, p)
}
