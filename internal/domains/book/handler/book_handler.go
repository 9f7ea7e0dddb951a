package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/domains/book/model"
	"bookshelf/internal/domains/book/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler - HTTP handler for the /books surface.
//
// Wire shapes are fixed by the frontend contract: the list is a bare
// JSON array and delete outcomes are {"message": ...} bodies.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing books")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error listing books"})
		return
	}

	c.JSON(http.StatusOK, books)
}

// CreateBook - POST /books
//
// The payload is stored as-is: missing title/author is accepted, not
// rejected. The shelf client validates presence before submitting.
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("Error decoding create book payload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating book"})
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error creating book")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating book"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook - DELETE /books/:id
//
// A non-numeric id can't match any entry, so it falls into the same
// "not found" outcome as an unknown numeric id.
func (h *Handler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}

	err = h.service.DeleteBook(c.Request.Context(), id)
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
	case err != nil:
		log.Error().Err(err).Int64("book_id", id).Msg("Error deleting book")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting book"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
	}
}
