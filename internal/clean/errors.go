package clean

import "fmt"

// SchemaError indicates a column required by the active mode could not be
// resolved from the header.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no column matching %q found in header", e.Column)
}

// DataError indicates the table never yielded a usable value for a required
// computation.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return e.Reason
}
