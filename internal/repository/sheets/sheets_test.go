package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFromUpdatedRange(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "quoted sheet title", in: "'Audit Trail'!A5:H5", want: 5},
		{name: "plain title", in: "Sheet1!A2:H2", want: 2},
		{name: "single cell", in: "'Audit Trail'!B12", want: 12},
		{name: "no row reference", in: "'Audit Trail'!A:H", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rowFromUpdatedRange(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemoryRepositoryAppendAndRead(t *testing.T) {
	repo := NewMemoryRepository([]interface{}{"Header"})

	rowNumber, err := repo.AppendRow(context.Background(), []interface{}{"a"})
	require.NoError(t, err)
	assert.Equal(t, 2, rowNumber)

	rowNumber, err = repo.AppendRow(context.Background(), []interface{}{"b"})
	require.NoError(t, err)
	assert.Equal(t, 3, rowNumber)

	rows, err := repo.ReadRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "b", rows[2][0])
}

func TestMemoryRepositoryDeleteShifts(t *testing.T) {
	repo := NewMemoryRepository(
		[]interface{}{"Header"},
		[]interface{}{"a"},
		[]interface{}{"b"},
		[]interface{}{"c"},
	)

	require.NoError(t, repo.DeleteRow(context.Background(), 3))

	rows := repo.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "c", rows[2][0])
}

func TestMemoryRepositoryDeleteOutOfRange(t *testing.T) {
	repo := NewMemoryRepository([]interface{}{"Header"})

	require.Error(t, repo.DeleteRow(context.Background(), 5))
	require.Error(t, repo.DeleteRow(context.Background(), 0))
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	repo.NotFound = true

	_, err := repo.ReadRows(context.Background())
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = repo.AppendRow(context.Background(), []interface{}{"a"})
	assert.ErrorIs(t, err, ErrSheetNotFound)

	assert.ErrorIs(t, repo.DeleteRow(context.Background(), 2), ErrSheetNotFound)
}

func TestMemoryRepositoryReadIsolation(t *testing.T) {
	repo := NewMemoryRepository([]interface{}{"Header"}, []interface{}{"a"})

	rows, err := repo.ReadRows(context.Background())
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the repository.
	rows[1][0] = "mutated"

	fresh := repo.Rows()
	assert.Equal(t, "a", fresh[1][0])
}
