package session

import (
	"context"
	"errors"

	"web420-api/internal/domain"
	userrepo "web420-api/internal/repository/user"
)

// Hasher is the credential hashing contract used by signup and login.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// Service handles user signup/login flows.
type Service struct {
	repo   userrepo.Repository
	hasher Hasher
}

func New(repo userrepo.Repository, hasher Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	UserName       string
	Password       string
	EmailAddresses []string
}

// Signup registers a new user. The userName check and the insert are separate
// store calls, so two concurrent signups for one name can both succeed.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if len(in.EmailAddresses) == 0 {
		return nil, errors.New("at least one email address is required")
	}

	_, err := s.repo.GetByUserName(ctx, in.UserName)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		UserName:       in.UserName,
		PasswordHash:   hashed,
		EmailAddresses: in.EmailAddresses,
	})
}

// Login validates credentials. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, userName, password string) (*domain.User, error) {
	u, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}
