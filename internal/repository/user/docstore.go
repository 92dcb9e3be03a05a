package user

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

func (r *docRepo) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return docstore.GetBy[domain.User](ctx, r.store, Collection, "userName", userName)
}

func (r *docRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	id, err := r.store.Insert(ctx, Collection, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	u.Version = 0
	return &u, nil
}
