// Package schema declares the Book and Borrowing payloads and their
// field constraints. The same structs are used for requests and responses.
package schema

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Book struct {
	Title           string `json:"title" binding:"required,min=1,max=255"`
	Author          string `json:"author" binding:"required,min=1,max=100"`
	ISBN            string `json:"isbn" binding:"required,len=13"`
	PublicationYear *int   `json:"publication_year"`
	AvailableCopies *int   `json:"available_copies" binding:"required,min=0"`
}

type Borrowing struct {
	BookID     int64 `json:"book_id" binding:"required,gt=0"`
	MemberID   int64 `json:"member_id" binding:"required,gt=0"`
	StaffID    int64 `json:"staff_id" binding:"required,gt=0"`
	BorrowDate *Date `json:"borrow_date" binding:"required"`
	ReturnDate *Date `json:"return_date"`
}

var validate = validator.New()

func init() {
	validate.SetTagName("binding")
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks a payload against its field constraints.
func Validate(v any) error {
	return validate.Struct(v)
}
