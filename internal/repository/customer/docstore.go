package customer

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

func (r *docRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	normalize(&c)
	id, err := r.store.Insert(ctx, Collection, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	c.Version = 0
	return &c, nil
}

func (r *docRepo) GetByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	c, err := docstore.GetBy[domain.Customer](ctx, r.store, Collection, "userName", userName)
	if err != nil {
		return nil, err
	}
	normalize(c)
	return c, nil
}

func (r *docRepo) Save(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	normalize(&c)
	if err := r.store.Replace(ctx, Collection, c.ID, c.Version, c); err != nil {
		return nil, err
	}
	c.Version++
	return &c, nil
}

func normalize(c *domain.Customer) {
	if c.Invoices == nil {
		c.Invoices = []domain.Invoice{}
	}
	for i := range c.Invoices {
		if c.Invoices[i].LineItems == nil {
			c.Invoices[i].LineItems = []domain.LineItem{}
		}
	}
}
