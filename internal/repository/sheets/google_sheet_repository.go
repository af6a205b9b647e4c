package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/buildtrack/internal/config"
	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

const usageWriteRange = "Usage!A:F"

// Repository mirrors the material usage log into a spreadsheet.
type Repository interface {
	AppendUsage(ctx context.Context, usage models.MaterialUsage) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
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
		logger:        logger,
	}, nil
}

// UsageRow converts a usage entry into spreadsheet cells.
func UsageRow(u models.MaterialUsage) []interface{} {
	return []interface{}{u.Date, u.ID, u.MaterialID, u.MaterialName, u.Quantity, u.Notes}
}

// AppendUsage appends one usage row to the Usage sheet.
func (r *GoogleSheetRepository) AppendUsage(ctx context.Context, usage models.MaterialUsage) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{UsageRow(usage)}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, usageWriteRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append usage row into range %s: %w", usageWriteRange, err)
	}

	r.logger.Debug("usage row appended to sheet", zap.Int("usage_id", usage.ID))
	return nil
}
