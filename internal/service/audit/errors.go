package audit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreNotFound indicates the audit tab (or the spreadsheet itself) is
// missing. The wrapped message carries guidance to create the tab.
var ErrStoreNotFound = errors.New("audit store not found")

// ValidationError reports required create fields that were missing or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// InvalidIdentifierError reports a delete identifier that is missing,
// non-numeric, below the first entry row, or beyond the current last row.
// LastRow is the current last row when the identifier was out of range, and
// negative when bounds were never reached.
type InvalidIdentifierError struct {
	Value   string
	LastRow int
}

func (e *InvalidIdentifierError) Error() string {
	switch {
	case e.Value == "":
		return "row number is required for delete"
	case e.LastRow >= 2:
		return fmt.Sprintf("invalid row number %s: entries occupy rows 2 to %d", e.Value, e.LastRow)
	case e.LastRow >= 0:
		return fmt.Sprintf("invalid row number %s: the sheet has no entries", e.Value)
	default:
		return fmt.Sprintf("invalid row number %s: must be an integer of 2 or more (row 1 is the header)", e.Value)
	}
}

// UnknownActionError reports an unrecognized dispatch discriminator.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	if e.Action == "" {
		return "missing action parameter"
	}
	return fmt.Sprintf("unknown action %q", e.Action)
}
