package books

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/db/dbtest"
	"library-backend/internal/schema"
)

type errResp struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setup(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pool := dbtest.Open(t)
	r := gin.New()
	RegisterRoutes(r, NewService(pool))
	return r, pool
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) errResp {
	t.Helper()
	var e errResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), w.Body.String())
	return e
}

func list(t *testing.T, r http.Handler) []schema.Book {
	t.Helper()
	w := do(t, r, http.MethodGet, "/books/", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out []schema.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func intp(v int) *int { return &v }

func sampleBook(isbn string) schema.Book {
	return schema.Book{
		Title:           "A Wizard of Earthsea",
		Author:          "Ursula K. Le Guin",
		ISBN:            isbn,
		PublicationYear: intp(1968),
		AvailableCopies: intp(2),
	}
}

func TestCreateThenList(t *testing.T) {
	r, _ := setup(t)
	b := sampleBook("9780547773742")

	w := do(t, r, http.MethodPost, "/books/", b)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "/books/1", w.Header().Get("Location"))

	var echoed schema.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echoed))
	assert.Equal(t, b, echoed)
	assert.NotContains(t, w.Body.String(), "book_id")

	assert.Equal(t, []schema.Book{b}, list(t, r))
}

func TestCreateWithoutPublicationYear(t *testing.T) {
	r, _ := setup(t)
	b := sampleBook("9780547773742")
	b.PublicationYear = nil

	w := do(t, r, http.MethodPost, "/books/", b)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"publication_year":null`)
	assert.Equal(t, []schema.Book{b}, list(t, r))
}

func TestCreateDuplicateISBN(t *testing.T) {
	r, _ := setup(t)

	w := do(t, r, http.MethodPost, "/books/", sampleBook("9780547773742"))
	require.Equal(t, http.StatusOK, w.Code)

	other := sampleBook("9780547773742")
	other.Title = "The Tombs of Atuan"
	w = do(t, r, http.MethodPost, "/books/", other)
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decodeErr(t, w)
	assert.Equal(t, "DUPLICATE_KEY", e.Error.Code)
	assert.Equal(t, "ISBN already exists", e.Error.Message)

	assert.Len(t, list(t, r), 1)
}

func TestValidationBoundaries(t *testing.T) {
	r, _ := setup(t)

	for _, isbn := range []string{"978054777374", "97805477737421"} {
		w := do(t, r, http.MethodPost, "/books/", sampleBook(isbn))
		require.Equal(t, http.StatusBadRequest, w.Code, isbn)
		e := decodeErr(t, w)
		assert.Equal(t, "INVALID_ARGUMENT", e.Error.Code)
		assert.Contains(t, e.Error.Message, "isbn must be exactly 13 characters")
	}

	neg := sampleBook("9780547773742")
	neg.AvailableCopies = intp(-1)
	w := do(t, r, http.MethodPost, "/books/", neg)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeErr(t, w).Error.Message, "available_copies must be >= 0")

	assert.Empty(t, list(t, r), "rejected payloads never reach the store")

	zero := sampleBook("9780547773742")
	zero.AvailableCopies = intp(0)
	w = do(t, r, http.MethodPost, "/books/", zero)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/books/", map[string]any{"title": "x", "author": "y", "isbn": "9780547773743"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeErr(t, w).Error.Message, "available_copies is required")
}

func TestMalformedBody(t *testing.T) {
	r, _ := setup(t)
	req := httptest.NewRequest(http.MethodPost, "/books/", bytes.NewBufferString(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeErr(t, w).Error.Code)
}

func TestMiscasedKeysAreRejected(t *testing.T) {
	r, _ := setup(t)
	body := map[string]any{"TITLE": "x", "author": "y", "isbn": "9780547773743", "available_copies": 1}
	w := do(t, r, http.MethodPost, "/books/", body)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	e := decodeErr(t, w)
	assert.Equal(t, "INVALID_ARGUMENT", e.Error.Code)
	assert.Contains(t, e.Error.Message, "title is required")
	assert.Empty(t, list(t, r))
}

func TestUpdateRoundTrip(t *testing.T) {
	r, _ := setup(t)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/books/", sampleBook("9780547773742")).Code)
	require.Len(t, list(t, r), 1)

	updated := schema.Book{
		Title:           "The Farthest Shore",
		Author:          "U. K. Le Guin",
		ISBN:            "9780689845345",
		PublicationYear: intp(1972),
		AvailableCopies: intp(0),
	}
	w := do(t, r, http.MethodPut, "/books/1", updated)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var echoed schema.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echoed))
	assert.Equal(t, updated, echoed)
	assert.Equal(t, []schema.Book{updated}, list(t, r))

	// same values again still matches the row
	w = do(t, r, http.MethodPut, "/books/1", updated)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUpdateMissingBook(t *testing.T) {
	r, _ := setup(t)
	b := sampleBook("9780547773742")
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/books/", b).Code)

	changed := sampleBook("9780689845345")
	w := do(t, r, http.MethodPut, "/books/99", changed)
	require.Equal(t, http.StatusNotFound, w.Code)
	e := decodeErr(t, w)
	assert.Equal(t, "NOT_FOUND", e.Error.Code)
	assert.Equal(t, "Book not found", e.Error.Message)

	assert.Equal(t, []schema.Book{b}, list(t, r))
}

func TestUpdateDuplicateISBN(t *testing.T) {
	r, _ := setup(t)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/books/", sampleBook("9780547773742")).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/books/", sampleBook("9780689845345")).Code)

	w := do(t, r, http.MethodPut, "/books/2", sampleBook("9780547773742"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DUPLICATE_KEY", decodeErr(t, w).Error.Code)
}

func TestUpdateInvalidPayload(t *testing.T) {
	r, _ := setup(t)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/books/", sampleBook("9780547773742")).Code)

	bad := sampleBook("123")
	w := do(t, r, http.MethodPut, "/books/1", bad)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeErr(t, w).Error.Code)
}

func TestDelete(t *testing.T) {
	r, _ := setup(t)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/books/", sampleBook("9780547773742")).Code)

	w := do(t, r, http.MethodDelete, "/books/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail":"Book deleted"}`, w.Body.String())
	assert.Empty(t, list(t, r))

	w = do(t, r, http.MethodDelete, "/books/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", decodeErr(t, w).Error.Message)
}

func TestNonNumericID(t *testing.T) {
	r, _ := setup(t)
	w := do(t, r, http.MethodDelete, "/books/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeErr(t, w).Error.Code)
}

func TestStoreUnavailable(t *testing.T) {
	r, pool := setup(t)
	require.NoError(t, pool.Close())

	w := do(t, r, http.MethodGet, "/books/", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", decodeErr(t, w).Error.Code)

	w = do(t, r, http.MethodPost, "/books/", sampleBook("9780547773742"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "STORE_ERROR", decodeErr(t, w).Error.Code)

	w = do(t, r, http.MethodDelete, "/books/1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "STORE_ERROR", decodeErr(t, w).Error.Code)
}
