package user

import (
	"context"

	"web420-api/internal/domain"
)

const Collection = "users"

// Repository persists and fetches users. UserName uniqueness is not enforced
// here; callers check with GetByUserName before Create.
type Repository interface {
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}
