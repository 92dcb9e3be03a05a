package httpserver

import (
	"errors"
	"net/http"
	"slices"

	"web420-api/internal/apidocs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// buildRouter wires routes for the API.
func buildRouter(log *zap.SugaredLogger, pinger Pinger, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	if deps.Composers == nil || deps.Persons == nil || deps.Sessions == nil || deps.Customers == nil || deps.Teams == nil {
		return nil, errors.New("httpserver: every service in Deps is required")
	}
	docs, err := apidocs.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(log.Named("http")), corsMiddleware(allowedOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(pinger))
	docs.Mount(router)

	h := &handlers{log: log.Named("handlers"), deps: deps}
	api := router.Group("/api")

	api.GET("/composers", h.listComposers)
	api.GET("/composers/:id", h.getComposer)
	api.POST("/composers", h.createComposer)
	api.PUT("/composers/:id", h.updateComposer)
	api.DELETE("/composers/:id", h.deleteComposer)

	api.GET("/persons", h.listPersons)
	api.POST("/persons", h.createPerson)

	api.POST("/signup", h.signup)
	api.POST("/login", h.login)

	api.POST("/customers", h.createCustomer)
	api.POST("/customers/:userName/invoices", h.addInvoice)
	api.GET("/customers/:userName/invoices", h.listInvoices)

	api.GET("/teams", h.listTeams)
	api.POST("/teams", h.createTeam)
	api.GET("/teams/:id", h.listPlayers)
	api.POST("/teams/:id/players", h.addPlayer)
	api.DELETE("/teams/:id", h.deleteTeam)

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
