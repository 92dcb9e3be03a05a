package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
	"web420-api/internal/password"
	userrepo "web420-api/internal/repository/user"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() (*Service, *docstore.MemoryStore) {
	store := docstore.NewMemory()
	return New(userrepo.NewDocStore(store), password.New(bcrypt.MinCost)), store
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, SignupInput{UserName: "brock", Password: "s3cret", EmailAddresses: []string{"b@example.com"}})
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", u.PasswordHash)

	got, err := svc.Login(ctx, "brock", "s3cret")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{UserName: "brock", Password: "s3cret", EmailAddresses: []string{"b@example.com"}})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "brock", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "s3cret")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignup_DuplicateUserName(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	in := SignupInput{UserName: "brock", Password: "a", EmailAddresses: []string{"a@example.com"}}
	_, err := svc.Signup(ctx, in)
	require.NoError(t, err)

	in.Password = "b"
	_, err = svc.Signup(ctx, in)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	docs, err := store.Find(ctx, userrepo.Collection)
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestSignup_RequiresEmail(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Signup(context.Background(), SignupInput{UserName: "x", Password: "y"})
	require.Error(t, err)
	require.False(t, domain.IsDatastore(err))
}

type stubRepo struct {
	mu       sync.Mutex
	getErr   error
	created  []domain.User
	createFn func(domain.User) (*domain.User, error)
}

func (s *stubRepo) GetByUserName(context.Context, string) (*domain.User, error) {
	return nil, s.getErr
}

func (s *stubRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, u)
	if s.createFn != nil {
		return s.createFn(u)
	}
	return &u, nil
}

func TestSignup_PropagatesDatastoreErrors(t *testing.T) {
	dsErr := &domain.DatastoreError{Op: "findOne", Collection: "users", Err: errors.New("socket closed")}
	svc := New(&stubRepo{getErr: dsErr}, password.New(bcrypt.MinCost))

	_, err := svc.Signup(context.Background(), SignupInput{UserName: "u", Password: "p", EmailAddresses: []string{"e"}})
	require.ErrorIs(t, err, dsErr)

	_, err = svc.Login(context.Background(), "u", "p")
	require.ErrorIs(t, err, dsErr)
}

// Both signups observe "not found" before either inserts, so both are
// created. This is the accepted check-then-act gap of userName uniqueness.
func TestSignup_UniquenessIsCheckThenAct(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, password.New(bcrypt.MinCost))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Signup(context.Background(), SignupInput{UserName: "same", Password: "p", EmailAddresses: []string{"e"}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, repo.created, 2)
}
