package models

import (
	"fmt"
	"strconv"
	"time"
)

// Column labels of the audit sheet header row, in their fixed physical order.
const (
	ColumnTimestamp   = "Timestamp"
	ColumnAssetCode   = "Asset Code"
	ColumnDescription = "Description"
	ColumnAction      = "Action"
	ColumnUser        = "User"
	ColumnLocation    = "Location"
	ColumnNotes       = "Notes"
	ColumnValue       = "Value"
)

// HeaderRow returns the expected header row of the audit sheet.
func HeaderRow() []interface{} {
	return []interface{}{
		ColumnTimestamp,
		ColumnAssetCode,
		ColumnDescription,
		ColumnAction,
		ColumnUser,
		ColumnLocation,
		ColumnNotes,
		ColumnValue,
	}
}

// Entry is a single audit record describing an action taken on an asset.
// RowNumber is the 1-based physical position of the entry within the sheet;
// row 1 holds the header, so entries live at rows >= 2. The row number is the
// entry's externally visible identifier and is not stable across deletions.
type Entry struct {
	Timestamp   string  `json:"timestamp"`
	AssetCode   string  `json:"assetCode"`
	Description string  `json:"description"`
	Action      string  `json:"action"`
	User        string  `json:"user"`
	Location    string  `json:"location"`
	Notes       string  `json:"notes"`
	Value       float64 `json:"value"`
	RowNumber   int     `json:"rowNumber"`
}

// EntryFromRow maps a sheet row onto an Entry by matching cells against the
// header labels, so column reordering in the sheet still resolves correctly.
// Cells missing from a short row default to the zero value.
func EntryFromRow(header []interface{}, row []interface{}, rowNumber int) Entry {
	cells := make(map[string]interface{}, len(header))
	for i, label := range header {
		if i < len(row) {
			cells[fmt.Sprint(label)] = row[i]
		}
	}

	return Entry{
		Timestamp:   cellString(cells[ColumnTimestamp]),
		AssetCode:   cellString(cells[ColumnAssetCode]),
		Description: cellString(cells[ColumnDescription]),
		Action:      cellString(cells[ColumnAction]),
		User:        cellString(cells[ColumnUser]),
		Location:    cellString(cells[ColumnLocation]),
		Notes:       cellString(cells[ColumnNotes]),
		Value:       cellFloat(cells[ColumnValue]),
		RowNumber:   rowNumber,
	}
}

// ToRow converts the entry into a sheet row following the fixed column order.
// A missing timestamp is substituted with the provided time in RFC 3339.
func (e Entry) ToRow(now time.Time) []interface{} {
	timestamp := e.Timestamp
	if timestamp == "" {
		timestamp = now.UTC().Format(time.RFC3339)
	}

	return []interface{}{
		timestamp,
		e.AssetCode,
		e.Description,
		e.Action,
		e.User,
		e.Location,
		e.Notes,
		e.Value,
	}
}

func cellString(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func cellFloat(value interface{}) float64 {
	if value == nil {
		return 0
	}
	parsed, err := strconv.ParseFloat(fmt.Sprint(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
