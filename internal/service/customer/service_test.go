package customer

import (
	"context"
	"testing"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
	custrepo "web420-api/internal/repository/customer"

	"github.com/stretchr/testify/require"
)

func TestAddInvoice_AppendsInOrder(t *testing.T) {
	svc := New(custrepo.NewDocStore(docstore.NewMemory()))
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{FirstName: "Tess", LastName: "Ng", UserName: "tng"})
	require.NoError(t, err)

	for _, sub := range []float64{10, 20, 30} {
		_, err := svc.AddInvoice(ctx, "tng", domain.Invoice{Subtotal: sub})
		require.NoError(t, err)
	}

	invoices, err := svc.ListInvoices(ctx, "tng")
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	for i, sub := range []float64{10, 20, 30} {
		require.Equal(t, sub, invoices[i].Subtotal)
		require.NotNil(t, invoices[i].LineItems)
	}
}

func TestAddInvoice_UnknownUserName(t *testing.T) {
	svc := New(custrepo.NewDocStore(docstore.NewMemory()))
	_, err := svc.AddInvoice(context.Background(), "ghost", domain.Invoice{})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListInvoices(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// alwaysStale simulates a writer that keeps losing the version race.
type alwaysStale struct {
	custrepo.Repository
	saves int
}

func (r *alwaysStale) Save(context.Context, domain.Customer) (*domain.Customer, error) {
	r.saves++
	return nil, domain.ErrConcurrentModification
}

func TestAddInvoice_GivesUpAfterRepeatedConflicts(t *testing.T) {
	repo := &alwaysStale{Repository: custrepo.NewDocStore(docstore.NewMemory())}
	svc := New(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{UserName: "tng"})
	require.NoError(t, err)

	_, err = svc.AddInvoice(ctx, "tng", domain.Invoice{Subtotal: 1})
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	require.True(t, domain.IsDatastore(err))
	require.Equal(t, docstore.DefaultAttempts, repo.saves)
}

func TestAddInvoice_ConcurrentWritersKeepEveryInvoice(t *testing.T) {
	svc := New(custrepo.NewDocStore(docstore.NewMemory()))
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{UserName: "tng"})
	require.NoError(t, err)

	// Serialized by the memory store's lock, so none of these conflict; the
	// version check is what keeps interleaved writers from losing updates.
	for i := 0; i < 5; i++ {
		_, err := svc.AddInvoice(ctx, "tng", domain.Invoice{Subtotal: float64(i)})
		require.NoError(t, err)
	}
	invoices, err := svc.ListInvoices(ctx, "tng")
	require.NoError(t, err)
	require.Len(t, invoices, 5)
}
