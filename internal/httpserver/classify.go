package httpserver

import (
	"errors"
	"net/http"

	"web420-api/internal/domain"
)

// Category names the failure class a handler reports.
type Category string

const (
	CategoryNotFound           Category = "not-found"
	CategoryInvalidReference   Category = "invalid-reference"
	CategoryConflict           Category = "conflict"
	CategoryInvalidCredentials Category = "invalid-credentials"
	CategoryDatastore          Category = "datastore-exception"
	CategoryServer             Category = "server-exception"
)

// Policy is the per-route status table. Zero fields fall back: Missing and
// MalformedID to Server, Datastore to 501, Server to 500.
type Policy struct {
	Missing     int
	MalformedID int
	Datastore   int
	Server      int
}

// Classification is the outcome of Classify.
type Classification struct {
	Status   int
	Category Category
}

// Route policies.
var (
	// Composer get-by-id reports every failure other than a miss as 500.
	composerGetPolicy = Policy{Missing: http.StatusNotFound, MalformedID: http.StatusInternalServerError, Datastore: http.StatusInternalServerError}
	composerUpdPolicy = Policy{Missing: http.StatusUnauthorized, MalformedID: http.StatusUnauthorized}
	composerDelPolicy = Policy{Missing: http.StatusUnauthorized, MalformedID: http.StatusUnauthorized, Datastore: http.StatusInternalServerError}
	teamByIDPolicy    = Policy{Missing: http.StatusUnauthorized, MalformedID: http.StatusUnauthorized}
	invoicePolicy     = Policy{Missing: http.StatusNotFound}
	signupPolicy      = Policy{Datastore: http.StatusInternalServerError}
	loginPolicy       = Policy{Datastore: http.StatusNotImplemented, Server: http.StatusNotImplemented}
	collectionPolicy  = Policy{}
)

// Classify maps err onto a status and category under p. Datastore faults are
// told apart from server faults by origin: anything wrapping a
// *domain.DatastoreError or a lost version race came from the store.
func Classify(err error, p Policy) Classification {
	server := p.Server
	if server == 0 {
		server = http.StatusInternalServerError
	}
	datastore := p.Datastore
	if datastore == 0 {
		datastore = http.StatusNotImplemented
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Classification{http.StatusUnauthorized, CategoryInvalidCredentials}
	case errors.Is(err, domain.ErrAlreadyExists):
		return Classification{http.StatusUnauthorized, CategoryConflict}
	case errors.Is(err, domain.ErrInvalidID) && p.MalformedID != 0:
		return byStatus(p.MalformedID, CategoryInvalidReference)
	case errors.Is(err, domain.ErrNotFound) && p.Missing != 0:
		if p.Missing == http.StatusNotFound {
			return Classification{http.StatusNotFound, CategoryNotFound}
		}
		return byStatus(p.Missing, CategoryInvalidReference)
	case domain.IsDatastore(err):
		return byStatus(datastore, CategoryDatastore)
	}
	return byStatus(server, CategoryServer)
}

// byStatus keeps the category consistent with a status that a policy
// redirected to 500 or 501.
func byStatus(status int, c Category) Classification {
	switch status {
	case http.StatusInternalServerError:
		c = CategoryServer
	case http.StatusNotImplemented:
		c = CategoryDatastore
	}
	return Classification{Status: status, Category: c}
}
