package team

import (
	"context"

	"web420-api/internal/domain"
)

const Collection = "teams"

// Repository persists and fetches teams. Players are persisted by saving the
// whole team document.
type Repository interface {
	List(ctx context.Context) ([]domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Create(ctx context.Context, t domain.Team) (*domain.Team, error)
	Save(ctx context.Context, t domain.Team) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
}
