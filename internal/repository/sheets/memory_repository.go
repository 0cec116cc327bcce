package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development runs. It mirrors the positional semantics of the real sheet:
// rows are 1-based and deleting a row shifts later rows up.
type MemoryRepository struct {
	mu   sync.Mutex
	rows [][]interface{}

	// NotFound makes every operation fail with ErrSheetNotFound, simulating a
	// missing audit tab.
	NotFound bool
}

// NewMemoryRepository seeds a repository with the provided rows. Pass the
// header row first to emulate a properly initialized sheet.
func NewMemoryRepository(rows ...[]interface{}) *MemoryRepository {
	seeded := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		seeded = append(seeded, append([]interface{}(nil), row...))
	}
	return &MemoryRepository{rows: seeded}
}

// ReadRows returns a copy of all rows, header included.
func (m *MemoryRepository) ReadRows(ctx context.Context) ([][]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.NotFound {
		return nil, ErrSheetNotFound
	}

	out := make([][]interface{}, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]interface{}(nil), row...)
	}
	return out, nil
}

// AppendRow adds values as the new last row and returns its 1-based position.
func (m *MemoryRepository) AppendRow(ctx context.Context, values []interface{}) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.NotFound {
		return 0, ErrSheetNotFound
	}

	m.rows = append(m.rows, append([]interface{}(nil), values...))
	return len(m.rows), nil
}

// DeleteRow removes the row at the given 1-based position.
func (m *MemoryRepository) DeleteRow(ctx context.Context, rowNumber int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.NotFound {
		return ErrSheetNotFound
	}

	if rowNumber < 1 || rowNumber > len(m.rows) {
		return fmt.Errorf("row %d out of range (have %d rows)", rowNumber, len(m.rows))
	}

	m.rows = append(m.rows[:rowNumber-1], m.rows[rowNumber:]...)
	return nil
}

// Rows returns a snapshot of the current sheet contents.
func (m *MemoryRepository) Rows() [][]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]interface{}, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]interface{}(nil), row...)
	}
	return out
}
