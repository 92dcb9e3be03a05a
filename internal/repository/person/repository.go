package person

import (
	"context"

	"web420-api/internal/domain"
)

const Collection = "persons"

type Repository interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
}
