package team

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

func (r *docRepo) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := docstore.FindAll[domain.Team](ctx, r.store, Collection)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		normalize(&teams[i])
	}
	return teams, nil
}

func (r *docRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return nil, err
	}
	t, err := docstore.Get[domain.Team](ctx, r.store, Collection, oid)
	if err != nil {
		return nil, err
	}
	normalize(t)
	return t, nil
}

func (r *docRepo) Create(ctx context.Context, t domain.Team) (*domain.Team, error) {
	normalize(&t)
	id, err := r.store.Insert(ctx, Collection, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	t.Version = 0
	return &t, nil
}

func (r *docRepo) Save(ctx context.Context, t domain.Team) (*domain.Team, error) {
	normalize(&t)
	if err := r.store.Replace(ctx, Collection, t.ID, t.Version, t); err != nil {
		return nil, err
	}
	t.Version++
	return &t, nil
}

func (r *docRepo) Delete(ctx context.Context, id string) error {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, Collection, oid)
}

func normalize(t *domain.Team) {
	if t.Players == nil {
		t.Players = []domain.Player{}
	}
}
