package composer

import (
	"context"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
	composerrepo "web420-api/internal/repository/composer"
)

type Service struct {
	repo composerrepo.Repository
}

func New(repo composerrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	FirstName string
	LastName  string
}

// Patch carries the fields of an update; nil fields are left untouched.
type Patch struct {
	FirstName *string
	LastName  *string
}

func (s *Service) List(ctx context.Context) ([]domain.Composer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Composer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Composer, error) {
	return s.repo.Create(ctx, domain.Composer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
}

// Update applies p to the stored composer and saves it. The composer is
// re-read if another writer saved it in between.
func (s *Service) Update(ctx context.Context, id string, p Patch) (*domain.Composer, error) {
	var out *domain.Composer
	err := docstore.RetryOnConflict(ctx, docstore.DefaultAttempts, func() error {
		c, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.FirstName != nil {
			c.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			c.LastName = *p.LastName
		}
		out, err = s.repo.Save(ctx, *c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
