package composer

import (
	"context"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
)

type docRepo struct {
	store docstore.Store
}

// NewDocStore returns a Repository backed by a document store.
func NewDocStore(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) List(ctx context.Context) ([]domain.Composer, error) {
	return docstore.FindAll[domain.Composer](ctx, r.store, Collection)
}

func (r *docRepo) GetByID(ctx context.Context, id string) (*domain.Composer, error) {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return nil, err
	}
	return docstore.Get[domain.Composer](ctx, r.store, Collection, oid)
}

func (r *docRepo) Create(ctx context.Context, c domain.Composer) (*domain.Composer, error) {
	id, err := r.store.Insert(ctx, Collection, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	c.Version = 0
	return &c, nil
}

func (r *docRepo) Save(ctx context.Context, c domain.Composer) (*domain.Composer, error) {
	if err := r.store.Replace(ctx, Collection, c.ID, c.Version, c); err != nil {
		return nil, err
	}
	c.Version++
	return &c, nil
}

func (r *docRepo) Delete(ctx context.Context, id string) error {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, Collection, oid)
}
