package person

import (
	"context"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
)

type docRepo struct {
	store docstore.Store
}

func NewDocStore(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Person, error) {
	persons, err := docstore.FindAll[domain.Person](ctx, r.store, Collection)
	if err != nil {
		return nil, err
	}
	for i := range persons {
		normalize(&persons[i])
	}
	return persons, nil
}

func (r *docRepo) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	normalize(&p)
	id, err := r.store.Insert(ctx, Collection, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.Version = 0
	return &p, nil
}

func normalize(p *domain.Person) {
	if p.Roles == nil {
		p.Roles = []domain.Role{}
	}
	if p.Dependents == nil {
		p.Dependents = []domain.Dependent{}
	}
}
