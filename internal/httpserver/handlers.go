package httpserver

import (
	"context"
	"net/http"

	"web420-api/internal/domain"
	composersvc "web420-api/internal/service/composer"
	customersvc "web420-api/internal/service/customer"
	sessionsvc "web420-api/internal/service/session"
	teamsvc "web420-api/internal/service/team"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ComposerService interface {
	List(ctx context.Context) ([]domain.Composer, error)
	Get(ctx context.Context, id string) (*domain.Composer, error)
	Create(ctx context.Context, in composersvc.CreateInput) (*domain.Composer, error)
	Update(ctx context.Context, id string, p composersvc.Patch) (*domain.Composer, error)
	Delete(ctx context.Context, id string) error
}

type PersonService interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
}

type SessionService interface {
	Signup(ctx context.Context, in sessionsvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, userName, password string) (*domain.User, error)
}

type CustomerService interface {
	Create(ctx context.Context, in customersvc.CreateInput) (*domain.Customer, error)
	AddInvoice(ctx context.Context, userName string, inv domain.Invoice) (*domain.Customer, error)
	ListInvoices(ctx context.Context, userName string) ([]domain.Invoice, error)
}

type TeamService interface {
	List(ctx context.Context) ([]domain.Team, error)
	Create(ctx context.Context, in teamsvc.CreateInput) (*domain.Team, error)
	Players(ctx context.Context, id string) ([]domain.Player, error)
	AddPlayer(ctx context.Context, id string, p domain.Player) (*domain.Player, error)
	Delete(ctx context.Context, id string) error
}

// Deps carries the services the router dispatches to.
type Deps struct {
	Composers ComposerService
	Persons   PersonService
	Sessions  SessionService
	Customers CustomerService
	Teams     TeamService
}

type handlers struct {
	log  *zap.SugaredLogger
	deps Deps
}

const (
	msgDatastore = "MongoDB Exception"
	msgServer    = "Server Exception"
)

// classify logs err and returns its classification under p.
func (h *handlers) classify(c *gin.Context, op string, err error, p Policy) Classification {
	cl := Classify(err, p)
	h.log.Errorw(op+" failed",
		"error", err,
		"status", cl.Status,
		"category", cl.Category,
		"request_id", c.GetString(requestIDKey),
	)
	return cl
}

// failText writes a plain-text failure. Client-side categories carry
// invalidMsg; datastore and server faults carry the fixed exception texts.
func (h *handlers) failText(c *gin.Context, op string, err error, p Policy, invalidMsg string) {
	cl := h.classify(c, op, err, p)
	c.String(cl.Status, textFor(cl, invalidMsg))
}

func textFor(cl Classification, invalidMsg string) string {
	switch cl.Category {
	case CategoryDatastore:
		return msgDatastore
	case CategoryServer:
		return msgServer
	}
	return invalidMsg
}

// failMessage writes a {"message": ...} failure with the error text appended
// to the exception prefix.
func (h *handlers) failMessage(c *gin.Context, op string, err error, p Policy, notFoundMsg string) {
	cl := h.classify(c, op, err, p)
	msg := notFoundMsg
	switch cl.Category {
	case CategoryDatastore:
		msg = msgDatastore + ": " + err.Error()
	case CategoryServer:
		msg = msgServer + ": " + err.Error()
	}
	c.JSON(cl.Status, gin.H{"message": msg})
}

func okText(c *gin.Context, msg string) {
	c.String(http.StatusOK, msg)
}
