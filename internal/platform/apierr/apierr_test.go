package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalid("bad"), http.StatusBadRequest},
		{ErrReference("Book does not exist"), http.StatusBadRequest},
		{ErrDuplicate("ISBN already exists"), http.StatusBadRequest},
		{ErrStore(errors.New("conn reset")), http.StatusBadRequest},
		{ErrNotFound("Book not found"), http.StatusNotFound},
		{ErrInternal(errors.New("conn reset")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.err), tc.err.Error())
	}
}

func TestStoreErrorHidesCause(t *testing.T) {
	cause := errors.New("Error 2013: Lost connection to MySQL server")
	err := ErrStore(cause)

	assert.ErrorIs(t, err, cause)
	body := BodyFrom(err)
	assert.Equal(t, CodeStore, body.Error.Code)
	assert.NotContains(t, body.Error.Message, "MySQL")
}

func TestFromValidation(t *testing.T) {
	type payload struct {
		Name  string `binding:"required,max=3"`
		Count int    `binding:"min=0"`
	}
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(payload{Name: "toolong", Count: -1})
	require.Error(t, err)

	api := FromValidation(err)
	assert.Equal(t, CodeInvalidArgument, api.Code)
	assert.Contains(t, api.Message, "Name must be at most 3 characters")
	assert.Contains(t, api.Message, "Count must be >= 0")

	api = FromValidation(errors.New("unexpected EOF"))
	assert.Equal(t, "invalid request body: unexpected EOF", api.Message)
}

func TestBodyEnvelope(t *testing.T) {
	buf, err := json.Marshal(Body(CodeNotFound, "Book not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Book not found"}}`, string(buf))

	buf, err = json.Marshal(DetailResponse{Detail: "Book deleted"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"Book deleted"}`, string(buf))
}
