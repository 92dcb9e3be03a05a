package httpserver

import (
	"net/http"

	"web420-api/internal/domain"
	customersvc "web420-api/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type customerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName" binding:"required"`
}

type invoiceRequest struct {
	Subtotal    float64           `json:"subtotal"`
	Tax         float64           `json:"tax"`
	DateCreated string            `json:"dateCreated"`
	DateShipped string            `json:"dateShipped"`
	LineItems   []domain.LineItem `json:"lineItems"`
}

// failCustomer reports a miss as "User not found" and every fault as
// "Server Exception", whichever of 500 or 501 it classifies to.
func (h *handlers) failCustomer(c *gin.Context, op string, err error, p Policy) {
	cl := h.classify(c, op, err, p)
	if cl.Category == CategoryNotFound {
		c.String(cl.Status, "User not found")
		return
	}
	c.String(cl.Status, msgServer)
}

func (h *handlers) createCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failCustomer(c, "create customer", err, collectionPolicy)
		return
	}
	_, err := h.deps.Customers.Create(c.Request.Context(), customersvc.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	})
	if err != nil {
		h.failCustomer(c, "create customer", err, collectionPolicy)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer added to MongoDB"})
}

func (h *handlers) addInvoice(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failCustomer(c, "add invoice", err, invoicePolicy)
		return
	}
	_, err := h.deps.Customers.AddInvoice(c.Request.Context(), c.Param("userName"), domain.Invoice{
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		DateCreated: req.DateCreated,
		DateShipped: req.DateShipped,
		LineItems:   req.LineItems,
	})
	if err != nil {
		h.failCustomer(c, "add invoice", err, invoicePolicy)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice added to the customer"})
}

func (h *handlers) listInvoices(c *gin.Context) {
	invoices, err := h.deps.Customers.ListInvoices(c.Request.Context(), c.Param("userName"))
	if err != nil {
		h.failCustomer(c, "list invoices", err, invoicePolicy)
		return
	}
	c.JSON(http.StatusOK, invoices)
}
