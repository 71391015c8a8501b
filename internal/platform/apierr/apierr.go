package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Code string

const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeInvalidReference Code = "INVALID_REFERENCE"
	CodeDuplicateKey     Code = "DUPLICATE_KEY"
	CodeNotFound         Code = "NOT_FOUND"
	CodeStore            Code = "STORE_ERROR" // 書き込み系のストアエラー
	CodeInternal         Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func ErrInvalid(msg string) *APIError   { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrReference(msg string) *APIError { return &APIError{Code: CodeInvalidReference, Message: msg} }
func ErrDuplicate(msg string) *APIError { return &APIError{Code: CodeDuplicateKey, Message: msg} }
func ErrNotFound(msg string) *APIError  { return &APIError{Code: CodeNotFound, Message: msg} }

// ErrStore wraps a failure on the write path.
func ErrStore(err error) *APIError {
	return &APIError{Code: CodeStore, Message: "store error", Err: err}
}

// ErrInternal wraps a failure on the read path.
func ErrInternal(err error) *APIError {
	return &APIError{Code: CodeInternal, Message: "store error", Err: err}
}

// CodeOf returns the code carried by err, CodeInternal for foreign errors.
func CodeOf(err error) Code {
	var api *APIError
	if errors.As(err, &api) {
		return api.Code
	}
	return CodeInternal
}

func ToHTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument, CodeInvalidReference, CodeDuplicateKey, CodeStore:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromValidation renders validator errors with JSON field names.
func FromValidation(err error) *APIError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ErrInvalid("invalid request body: " + err.Error())
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return ErrInvalid(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", f, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", f, fe.Param())
		}
		return fmt.Sprintf("%s must be >= %s", f, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", f, fe.Param())
		}
		return fmt.Sprintf("%s must be <= %s", f, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", f, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", f, fe.Tag())
	}
}

// ---------- response helpers ----------

type ErrorDetail struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// DetailResponse is returned by successful deletes.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func Body(code Code, msg string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: msg}}
}

func BodyFrom(err error) ErrorResponse {
	var api *APIError
	if errors.As(err, &api) {
		return Body(api.Code, api.Message)
	}
	return Body(CodeInternal, "internal error")
}

// Write sends err as the JSON error envelope with its mapped status.
func Write(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(ToHTTPStatus(err), BodyFrom(err))
}
