package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryFromRow(t *testing.T) {
	header := HeaderRow()
	row := []interface{}{"2025-01-01T00:00:00Z", "A-1", "Laptop", "Checkout", "sbarrett", "HQ", "spare battery", "1250.50"}

	entry := EntryFromRow(header, row, 2)

	assert.Equal(t, "2025-01-01T00:00:00Z", entry.Timestamp)
	assert.Equal(t, "A-1", entry.AssetCode)
	assert.Equal(t, "Laptop", entry.Description)
	assert.Equal(t, "Checkout", entry.Action)
	assert.Equal(t, "sbarrett", entry.User)
	assert.Equal(t, "HQ", entry.Location)
	assert.Equal(t, "spare battery", entry.Notes)
	assert.InDelta(t, 1250.50, entry.Value, 0.001)
	assert.Equal(t, 2, entry.RowNumber)
}

func TestEntryFromRowShortRow(t *testing.T) {
	header := HeaderRow()
	row := []interface{}{"2025-01-01T00:00:00Z", "A-1"}

	entry := EntryFromRow(header, row, 3)

	assert.Equal(t, "A-1", entry.AssetCode)
	assert.Empty(t, entry.Description)
	assert.Empty(t, entry.Action)
	assert.Zero(t, entry.Value)
	assert.Equal(t, 3, entry.RowNumber)
}

func TestEntryFromRowReorderedColumns(t *testing.T) {
	header := []interface{}{ColumnAssetCode, ColumnValue, ColumnTimestamp}
	row := []interface{}{"A-9", 40.0, "2025-02-02T00:00:00Z"}

	entry := EntryFromRow(header, row, 2)

	assert.Equal(t, "A-9", entry.AssetCode)
	assert.InDelta(t, 40.0, entry.Value, 0.001)
	assert.Equal(t, "2025-02-02T00:00:00Z", entry.Timestamp)
}

func TestEntryFromRowNonNumericValue(t *testing.T) {
	header := HeaderRow()
	row := []interface{}{"2025-01-01T00:00:00Z", "A-1", "", "Checkout", "", "", "", "n/a"}

	entry := EntryFromRow(header, row, 2)

	assert.Zero(t, entry.Value)
}

func TestToRowFixedOrder(t *testing.T) {
	entry := Entry{
		Timestamp:   "2025-01-01T00:00:00Z",
		AssetCode:   "A-1",
		Description: "Laptop",
		Action:      "Checkout",
		User:        "sbarrett",
		Location:    "HQ",
		Notes:       "",
		Value:       99.5,
	}

	row := entry.ToRow(time.Now())

	require.Len(t, row, 8)
	assert.Equal(t, "2025-01-01T00:00:00Z", row[0])
	assert.Equal(t, "A-1", row[1])
	assert.Equal(t, "Laptop", row[2])
	assert.Equal(t, "Checkout", row[3])
	assert.Equal(t, "sbarrett", row[4])
	assert.Equal(t, "HQ", row[5])
	assert.Equal(t, "", row[6])
	assert.Equal(t, 99.5, row[7])
}

func TestToRowTimestampFallback(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	entry := Entry{AssetCode: "A-1", Action: "Checkin"}

	row := entry.ToRow(now)

	require.Len(t, row, 8)
	assert.Equal(t, "2025-03-04T05:06:07Z", row[0])
}

func TestRoundTrip(t *testing.T) {
	entry := Entry{
		Timestamp: "2025-01-01T00:00:00Z",
		AssetCode: "A-1",
		Action:    "Checkout",
		Value:     12,
	}

	back := EntryFromRow(HeaderRow(), entry.ToRow(time.Now()), 2)

	assert.Equal(t, entry.Timestamp, back.Timestamp)
	assert.Equal(t, entry.AssetCode, back.AssetCode)
	assert.Equal(t, entry.Action, back.Action)
	assert.InDelta(t, entry.Value, back.Value, 0.001)
	assert.Equal(t, 2, back.RowNumber)
}
