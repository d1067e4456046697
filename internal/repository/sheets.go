package repository

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"scorecast/internal/models"
)

// sheetsStore appends lead rows to a Google Sheet via a service account.
// Each lead is one row: name, phone, score-as-string, interest, timestamp.
type sheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewSheetsStore builds the Sheets-backed lead store. Missing or unreadable
// credentials yield an unavailable store rather than an error so the rest of
// the application keeps working without lead capture.
func NewSheetsStore(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, logger *zap.Logger) LeadStore {
	if credentialsFile == "" || spreadsheetID == "" {
		return NewUnavailableStore("sheets credentials not configured", logger)
	}
	if _, err := os.Stat(credentialsFile); err != nil {
		logger.Warn("sheets credentials file unreadable", zap.String("path", credentialsFile), zap.Error(err))
		return NewUnavailableStore("sheets credentials file unreadable", logger)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		logger.Warn("sheets client init failed", zap.Error(err))
		return NewUnavailableStore("sheets client init failed", logger)
	}

	logger.Info("sheets lead store initialized", zap.String("spreadsheet_id", spreadsheetID), zap.String("sheet", sheetName))
	return &sheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}
}

func (s *sheetsStore) Append(ctx context.Context, lead models.Lead) AppendResult {
	row := &sheets.ValueRange{
		Values: [][]interface{}{{lead.Name, lead.Phone, lead.Score, lead.Interest, lead.Timestamp}},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetName, row).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		s.logger.Error("sheets append failed", zap.String("name", lead.Name), zap.Error(err))
		return AppendResult{Saved: false, Reason: "sheets append failed"}
	}
	return AppendResult{Saved: true}
}

func (s *sheetsStore) ListAll(ctx context.Context) []models.Lead {
	readRange := fmt.Sprintf("%s!A:E", s.sheetName)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		s.logger.Error("sheets read failed", zap.Error(err))
		return []models.Lead{}
	}

	leads := make([]models.Lead, 0, len(resp.Values))
	for _, row := range resp.Values {
		leads = append(leads, models.Lead{
			Name:      cell(row, 0),
			Phone:     cell(row, 1),
			Score:     cell(row, 2),
			Interest:  cell(row, 3),
			Timestamp: cell(row, 4),
		})
	}
	return leads
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return fmt.Sprint(row[i])
}
