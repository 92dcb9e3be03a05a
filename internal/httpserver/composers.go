package httpserver

import (
	"errors"
	"io"
	"net/http"

	composersvc "web420-api/internal/service/composer"

	"github.com/gin-gonic/gin"
)

type composerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// composerPatchRequest leaves absent fields untouched.
type composerPatchRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (h *handlers) listComposers(c *gin.Context) {
	composers, err := h.deps.Composers.List(c.Request.Context())
	if err != nil {
		h.failMessage(c, "list composers", err, collectionPolicy, "")
		return
	}
	c.JSON(http.StatusOK, composers)
}

func (h *handlers) getComposer(c *gin.Context) {
	composer, err := h.deps.Composers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failMessage(c, "get composer", err, composerGetPolicy, "Composer not found")
		return
	}
	c.JSON(http.StatusOK, composer)
}

func (h *handlers) createComposer(c *gin.Context) {
	var req composerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failMessage(c, "create composer", err, collectionPolicy, "")
		return
	}
	composer, err := h.deps.Composers.Create(c.Request.Context(), composersvc.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.failMessage(c, "create composer", err, collectionPolicy, "")
		return
	}
	c.JSON(http.StatusOK, composer)
}

func (h *handlers) updateComposer(c *gin.Context) {
	var req composerPatchRequest
	// A bodyless PUT is an empty patch and still reaches the id lookup.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.failText(c, "update composer", err, composerUpdPolicy, "")
		return
	}
	composer, err := h.deps.Composers.Update(c.Request.Context(), c.Param("id"), composersvc.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.failText(c, "update composer", err, composerUpdPolicy, "Invalid composerId")
		return
	}
	c.JSON(http.StatusOK, composer)
}

func (h *handlers) deleteComposer(c *gin.Context) {
	if err := h.deps.Composers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.failText(c, "delete composer", err, composerDelPolicy, "Invalid composerId")
		return
	}
	okText(c, "Composer deleted successfully")
}
