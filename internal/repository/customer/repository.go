package customer

import (
	"context"

	"web420-api/internal/domain"
)

const Collection = "customers"

// Repository persists and fetches customers. Invoices are persisted by saving
// the whole customer document.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Customer, error)
	Save(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}
