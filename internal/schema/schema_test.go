package schema

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func validBook() Book {
	return Book{
		Title:           "The Go Programming Language",
		Author:          "Donovan & Kernighan",
		ISBN:            "9780134190440",
		PublicationYear: intp(2015),
		AvailableCopies: intp(3),
	}
}

func TestBookISBNLength(t *testing.T) {
	for _, tc := range []struct {
		isbn string
		ok   bool
	}{
		{"978013419044", false},
		{"9780134190440", true},
		{"97801341904401", false},
	} {
		b := validBook()
		b.ISBN = tc.isbn
		err := Validate(b)
		if tc.ok {
			assert.NoError(t, err, tc.isbn)
		} else {
			assert.Error(t, err, tc.isbn)
		}
	}
}

func TestBookAvailableCopies(t *testing.T) {
	b := validBook()
	b.AvailableCopies = intp(-1)
	assert.Error(t, Validate(b))

	b.AvailableCopies = intp(0)
	assert.NoError(t, Validate(b))

	b.AvailableCopies = nil
	assert.Error(t, Validate(b), "available_copies is required")
}

func TestBookTextBounds(t *testing.T) {
	b := validBook()
	b.Title = ""
	assert.Error(t, Validate(b))

	b = validBook()
	b.Title = strings.Repeat("t", 255)
	assert.NoError(t, Validate(b))
	b.Title = strings.Repeat("t", 256)
	assert.Error(t, Validate(b))

	b = validBook()
	b.Author = strings.Repeat("a", 100)
	assert.NoError(t, Validate(b))
	b.Author = strings.Repeat("a", 101)
	assert.Error(t, Validate(b))

	b = validBook()
	b.PublicationYear = nil
	assert.NoError(t, Validate(b), "publication_year is optional")
}

func TestBorrowingConstraints(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	ok := Borrowing{BookID: 1, MemberID: 2, StaffID: 3, BorrowDate: &d}
	assert.NoError(t, Validate(ok))

	missingDate := ok
	missingDate.BorrowDate = nil
	assert.Error(t, Validate(missingDate))

	zeroMember := ok
	zeroMember.MemberID = 0
	assert.Error(t, Validate(zeroMember))

	negativeStaff := ok
	negativeStaff.StaffID = -4
	assert.Error(t, Validate(negativeStaff))
}

func TestDateJSON(t *testing.T) {
	var b Borrowing
	err := json.Unmarshal([]byte(`{"book_id":1,"member_id":2,"staff_id":3,"borrow_date":"2024-02-29","return_date":null}`), &b)
	require.NoError(t, err)
	require.NotNil(t, b.BorrowDate)
	assert.Equal(t, NewDate(2024, time.February, 29), *b.BorrowDate)
	assert.Nil(t, b.ReturnDate)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"book_id":1,"member_id":2,"staff_id":3,"borrow_date":"2024-02-29","return_date":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"borrow_date":"2024-02-30"}`), &b))
	assert.Error(t, json.Unmarshal([]byte(`{"borrow_date":"2024-02-01T10:00:00Z"}`), &b))
	assert.Error(t, json.Unmarshal([]byte(`{"borrow_date":20240201}`), &b))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, time.July, 4, 13, 0, 0, 0, time.Local)))
	assert.Equal(t, "2023-07-04", d.String())

	require.NoError(t, d.Scan([]byte("2021-01-31")))
	assert.Equal(t, "2021-01-31", d.String())

	require.NoError(t, d.Scan("2020-12-25 00:00:00+00:00"))
	assert.Equal(t, "2020-12-25", d.String())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2022, time.May, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, "2022-05-09", v)
}

func TestValidationUsesJSONNames(t *testing.T) {
	b := validBook()
	b.ISBN = "123"
	err := Validate(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isbn")
}

func TestDecodeKeysAreCaseSensitive(t *testing.T) {
	var b Book
	err := Decode(strings.NewReader(`{"TITLE":"x","author":"y","isbn":"9780134190440","available_copies":1}`), &b)
	require.Error(t, err)
	assert.Empty(t, b.Title)

	b = Book{}
	err = Decode(strings.NewReader(`{"title":"x","author":"y","isbn":"9780134190440","available_copies":1}`), &b)
	require.NoError(t, err)
	assert.Equal(t, "x", b.Title)
}

func TestDecodeBorrowDate(t *testing.T) {
	var br Borrowing
	err := Decode(strings.NewReader(`{"book_id":1,"member_id":2,"staff_id":3,"borrow_date":"2024-03-01"}`), &br)
	require.NoError(t, err)
	require.NotNil(t, br.BorrowDate)
	assert.Equal(t, "2024-03-01", br.BorrowDate.String())
	assert.Nil(t, br.ReturnDate)

	br = Borrowing{}
	err = Decode(strings.NewReader(`{"book_id":1,"member_id":2,"staff_id":3,"Borrow_Date":"2024-03-01"}`), &br)
	assert.Error(t, err)
}
