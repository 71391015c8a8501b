package borrowing

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
	r.POST("/borrowing/", h.CreateBorrowing)
	r.GET("/borrowing/", h.ListBorrowings)
	r.PUT("/borrowing/:borrow_id", h.UpdateBorrowing)
	r.DELETE("/borrowing/:borrow_id", h.DeleteBorrowing)
}

// CreateBorrowing godoc
// @Summary      Create a borrowing record
// @Tags         borrowing
// @Accept       json
// @Produce      json
// @Param        borrowing  body      schema.Borrowing  true  "borrowing record"
// @Success      200        {object}  schema.Borrowing
// @Failure      400        {object}  apierr.ErrorResponse  "INVALID_ARGUMENT, INVALID_REFERENCE or STORE_ERROR"
// @Router       /borrowing/ [post]
func (h *Handler) CreateBorrowing(c *gin.Context) {
	var req schema.Borrowing
	if err := schema.Decode(c.Request.Body, &req); err != nil {
		apierr.Write(c, apierr.FromValidation(err))
		return
	}
	res, id, err := h.svc.CreateBorrowing(c.Request.Context(), req)
	if err != nil {
		apierr.Write(c, err)
		return
	}
	c.Header("Location", "/borrowing/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, res)
}

// ListBorrowings godoc
// @Summary      List borrowing records
// @Tags         borrowing
// @Produce      json
// @Success      200  {array}   schema.Borrowing
// @Failure      500  {object}  apierr.ErrorResponse  "store error"
// @Router       /borrowing/ [get]
func (h *Handler) ListBorrowings(c *gin.Context) {
	res, err := h.svc.ListBorrowings(c.Request.Context())
	if err != nil {
		apierr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateBorrowing godoc
// @Summary      Replace a borrowing record
// @Tags         borrowing
// @Accept       json
// @Produce      json
// @Param        borrow_id  path      int               true  "borrowing id"
// @Param        borrowing  body      schema.Borrowing  true  "borrowing record"
// @Success      200        {object}  schema.Borrowing
// @Failure      400        {object}  apierr.ErrorResponse  "INVALID_ARGUMENT, INVALID_REFERENCE or STORE_ERROR"
// @Failure      404        {object}  apierr.ErrorResponse  "NOT_FOUND"
// @Router       /borrowing/{borrow_id} [put]
func (h *Handler) UpdateBorrowing(c *gin.Context) {
	id, ok := borrowID(c)
	if !ok {
		return
	}
	var req schema.Borrowing
	if err := schema.Decode(c.Request.Body, &req); err != nil {
		apierr.Write(c, apierr.FromValidation(err))
		return
	}
	res, err := h.svc.UpdateBorrowing(c.Request.Context(), id, req)
	if err != nil {
		apierr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBorrowing godoc
// @Summary      Delete a borrowing record
// @Tags         borrowing
// @Produce      json
// @Param        borrow_id  path      int  true  "borrowing id"
// @Success      200        {object}  apierr.DetailResponse
// @Failure      400        {object}  apierr.ErrorResponse  "STORE_ERROR"
// @Failure      404        {object}  apierr.ErrorResponse  "NOT_FOUND"
// @Router       /borrowing/{borrow_id} [delete]
func (h *Handler) DeleteBorrowing(c *gin.Context) {
	id, ok := borrowID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteBorrowing(c.Request.Context(), id); err != nil {
		apierr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, apierr.DetailResponse{Detail: "Borrowing record deleted"})
}

func borrowID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("borrow_id"), 10, 64)
	if err != nil {
		apierr.Write(c, apierr.ErrInvalid("borrow_id must be an integer"))
		return 0, false
	}
	return id, true
}
