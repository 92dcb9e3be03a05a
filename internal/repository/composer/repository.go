package composer

import (
	"context"

	"web420-api/internal/domain"
)

// Collection is the document collection composers are stored in.
const Collection = "composers"

// Repository persists and fetches composers.
type Repository interface {
	List(ctx context.Context) ([]domain.Composer, error)
	GetByID(ctx context.Context, id string) (*domain.Composer, error)
	Create(ctx context.Context, c domain.Composer) (*domain.Composer, error)
	Save(ctx context.Context, c domain.Composer) (*domain.Composer, error)
	Delete(ctx context.Context, id string) error
}
