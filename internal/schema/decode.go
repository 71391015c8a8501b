package schema

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Keys must match the json tags exactly; "TITLE" does not bind to title.
var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// Decode reads one JSON payload from r into v and validates it.
// Decoding failures are returned as-is; constraint failures as
// validator.ValidationErrors.
func Decode(r io.Reader, v any) error {
	if err := strictJSON.NewDecoder(r).Decode(v); err != nil {
		return err
	}
	return Validate(v)
}
