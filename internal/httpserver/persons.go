package httpserver

import (
	"net/http"

	"web420-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type personRequest struct {
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Roles      []domain.Role      `json:"roles"`
	Dependents []domain.Dependent `json:"dependents"`
	BirthDate  string             `json:"birthDate"`
}

func (h *handlers) listPersons(c *gin.Context) {
	persons, err := h.deps.Persons.List(c.Request.Context())
	if err != nil {
		h.failText(c, "list persons", err, collectionPolicy, "")
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (h *handlers) createPerson(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failText(c, "create person", err, collectionPolicy, "")
		return
	}
	person, err := h.deps.Persons.Create(c.Request.Context(), domain.Person{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      req.Roles,
		Dependents: req.Dependents,
		BirthDate:  req.BirthDate,
	})
	if err != nil {
		h.failText(c, "create person", err, collectionPolicy, "")
		return
	}
	c.JSON(http.StatusOK, person)
}
