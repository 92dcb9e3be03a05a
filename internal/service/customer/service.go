package customer

import (
	"context"

	"web420-api/internal/docstore"
	"web420-api/internal/domain"
	custrepo "web420-api/internal/repository/customer"
)

// Service handles customers and their invoices.
type Service struct {
	repo custrepo.Repository
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	FirstName string
	LastName  string
	UserName  string
}

// Create registers a customer with an empty invoice list.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	return s.repo.Create(ctx, domain.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		UserName:  in.UserName,
		Invoices:  []domain.Invoice{},
	})
}

// AddInvoice appends inv to the invoices of the customer with userName,
// keeping earlier invoices in order.
func (s *Service) AddInvoice(ctx context.Context, userName string, inv domain.Invoice) (*domain.Customer, error) {
	if inv.LineItems == nil {
		inv.LineItems = []domain.LineItem{}
	}
	var out *domain.Customer
	err := docstore.RetryOnConflict(ctx, docstore.DefaultAttempts, func() error {
		c, err := s.repo.GetByUserName(ctx, userName)
		if err != nil {
			return err
		}
		c.Invoices = append(c.Invoices, inv)
		out, err = s.repo.Save(ctx, *c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListInvoices(ctx context.Context, userName string) ([]domain.Invoice, error) {
	c, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return c.Invoices, nil
}
