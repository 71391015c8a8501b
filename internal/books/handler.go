package books

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/schema"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/books/", h.CreateBook)
	r.GET("/books/", h.ListBooks)
	r.PUT("/books/:book_id", h.UpdateBook)
	r.DELETE("/books/:book_id", h.DeleteBook)
}

// CreateBook godoc
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        book  body      schema.Book  true  "book"
// @Success      200   {object}  schema.Book
// @Failure      400   {object}  apierr.ErrorResponse  "INVALID_ARGUMENT, DUPLICATE_KEY or STORE_ERROR"
// @Router       /books/ [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var req schema.Book
	if err := schema.Decode(c.Request.Body, &req); err != nil {
		apierr.Write(c, apierr.FromValidation(err))
		return
	}
	res, id, err := h.svc.CreateBook(c.Request.Context(), req)
	if err != nil {
		apierr.Write(c, err)
		return
	}
	c.Header("Location", "/books/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, res)
}

// ListBooks godoc
// @Summary      List books
// @Tags         books
// @Produce      json
// @Success      200  {array}   schema.Book
// @Failure      500  {object}  apierr.ErrorResponse  "store error"
// @Router       /books/ [get]
func (h *Handler) ListBooks(c *gin.Context) {
	res, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		apierr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateBook godoc
// @Summary      Replace a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        book_id  path      int          true  "book id"
// @Param        book     body      schema.Book  true  "book"
// @Success      200      {object}  schema.Book
// @Failure      400      {object}  apierr.ErrorResponse  "INVALID_ARGUMENT, DUPLICATE_KEY or STORE_ERROR"
// @Failure      404      {object}  apierr.ErrorResponse  "NOT_FOUND"
// @Router       /books/{book_id} [put]
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	var req schema.Book
	if err := schema.Decode(c.Request.Body, &req); err != nil {
		apierr.Write(c, apierr.FromValidation(err))
		return
	}
	res, err := h.svc.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		apierr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        book_id  path      int  true  "book id"
// @Success      200      {object}  apierr.DetailResponse
// @Failure      400      {object}  apierr.ErrorResponse  "STORE_ERROR"
// @Failure      404      {object}  apierr.ErrorResponse  "NOT_FOUND"
// @Router       /books/{book_id} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteBook(c.Request.Context(), id); err != nil {
		apierr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, apierr.DetailResponse{Detail: "Book deleted"})
}

func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		apierr.Write(c, apierr.ErrInvalid("book_id must be an integer"))
		return 0, false
	}
	return id, true
}
