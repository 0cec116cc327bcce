package sheets

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/config"
)

// ErrSheetNotFound indicates the configured spreadsheet or audit tab does not
// exist. Callers surface it as guidance to create the tab.
var ErrSheetNotFound = errors.New("sheet not found")

// Repository defines the row operations the audit gateway needs from the
// backing tabular store.
type Repository interface {
	// ReadRows returns every row of the audit tab, header included.
	ReadRows(ctx context.Context) ([][]interface{}, error)
	// AppendRow appends values as a new last row and returns its 1-based position.
	AppendRow(ctx context.Context, values []interface{}) (int, error)
	// DeleteRow removes the row at the given 1-based position; later rows shift up.
	DeleteRow(ctx context.Context, rowNumber int) error
}

// GoogleSheetRepository implements Repository using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger

	mu         sync.Mutex
	sheetID    int64
	sheetIDSet bool
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		logger:        logger,
	}, nil
}

// ReadRows fetches the full audit tab, header row included.
func (r *GoogleSheetRepository) ReadRows(ctx context.Context) ([][]interface{}, error) {
	if _, err := r.resolveSheetID(ctx); err != nil {
		return nil, err
	}

	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.dataRange()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", r.dataRange(), err)
	}

	return resp.Values, nil
}

// AppendRow appends the provided values after the current last row and returns
// the 1-based row position the values landed on.
func (r *GoogleSheetRepository) AppendRow(ctx context.Context, values []interface{}) (int, error) {
	if _, err := r.resolveSheetID(ctx); err != nil {
		return 0, err
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.dataRange(), payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return 0, fmt.Errorf("append row into range %s: %w", r.dataRange(), err)
	}

	if resp.Updates == nil {
		return 0, fmt.Errorf("append response for range %s carried no update metadata", r.dataRange())
	}

	rowNumber, err := rowFromUpdatedRange(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, err
	}

	r.logger.Debug("row appended to sheet", zap.String("sheet", r.sheetName), zap.Int("row", rowNumber))
	return rowNumber, nil
}

// DeleteRow removes the row at the given 1-based position via a DeleteDimension
// batch update. Rows below the deleted one shift up by one.
func (r *GoogleSheetRepository) DeleteRow(ctx context.Context, rowNumber int) error {
	sheetID, err := r.resolveSheetID(ctx)
	if err != nil {
		return err
	}

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}

	if _, err := r.service.Spreadsheets.BatchUpdate(r.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d from sheet %s: %w", rowNumber, r.sheetName, err)
	}

	r.logger.Debug("row deleted from sheet", zap.String("sheet", r.sheetName), zap.Int("row", rowNumber))
	return nil
}

// resolveSheetID looks up the numeric sheet ID for the configured tab title.
// The ID is required by DeleteDimension and doubles as the existence check for
// every operation. It is cached after the first successful lookup.
func (r *GoogleSheetRepository) resolveSheetID(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sheetIDSet {
		return r.sheetID, nil
	}

	resp, err := r.service.Spreadsheets.Get(r.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == 404 || apiErr.Code == 400) {
			return 0, fmt.Errorf("spreadsheet %s unreachable: %w", r.spreadsheetID, ErrSheetNotFound)
		}
		return 0, fmt.Errorf("lookup spreadsheet %s: %w", r.spreadsheetID, err)
	}

	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == r.sheetName {
			r.sheetID = sheet.Properties.SheetId
			r.sheetIDSet = true
			return r.sheetID, nil
		}
	}

	return 0, fmt.Errorf("no tab titled %q in spreadsheet: %w", r.sheetName, ErrSheetNotFound)
}

func (r *GoogleSheetRepository) dataRange() string {
	return fmt.Sprintf("'%s'!A:H", r.sheetName)
}

var cellRowPattern = regexp.MustCompile(`[A-Z]+([0-9]+)`)

// rowFromUpdatedRange extracts the 1-based row index from an A1-notation
// range such as "'Audit Trail'!A5:H5".
func rowFromUpdatedRange(updatedRange string) (int, error) {
	ref := updatedRange
	if idx := strings.LastIndex(updatedRange, "!"); idx >= 0 {
		ref = updatedRange[idx+1:]
	}

	match := cellRowPattern.FindStringSubmatch(ref)
	if match == nil {
		return 0, fmt.Errorf("cannot determine appended row from range %q", updatedRange)
	}

	return strconv.Atoi(match[1])
}
