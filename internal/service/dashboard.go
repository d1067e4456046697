package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"scorecast/internal/models"
	"scorecast/internal/repository"
)

// LeadScore pairs a lead with its numeric score for the per-student chart.
type LeadScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// DashboardStats represents the aggregates shown on the admin dashboard.
type DashboardStats struct {
	TotalLeads int            `json:"total_leads"`
	AvgScore   float64        `json:"avg_score"`
	MostRecent *models.Lead   `json:"most_recent,omitempty"`
	ByInterest map[string]int `json:"by_interest"`
	Scores     []LeadScore    `json:"scores"`
}

// DashboardService computes read-only aggregates over the lead log.
type DashboardService struct {
	store  repository.LeadStore
	logger *zap.Logger
}

func NewDashboardService(store repository.LeadStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{store: store, logger: logger}
}

// Stats reads the full lead sequence and aggregates it. Scores that do not
// parse as numbers are excluded from the mean and the chart but still count
// toward the total.
func (s *DashboardService) Stats(ctx context.Context) DashboardStats {
	leads := s.store.ListAll(ctx)

	stats := DashboardStats{
		TotalLeads: len(leads),
		ByInterest: make(map[string]int),
		Scores:     []LeadScore{},
	}

	sum := 0.0
	numeric := 0
	for i := range leads {
		lead := leads[i]
		stats.ByInterest[lead.Interest]++
		if score, ok := parseScore(lead.Score); ok {
			sum += score
			numeric++
			stats.Scores = append(stats.Scores, LeadScore{Name: lead.Name, Score: score})
		}
	}
	if numeric > 0 {
		stats.AvgScore = math.Round(sum/float64(numeric)*10) / 10
	}
	if len(leads) > 0 {
		stats.MostRecent = &leads[len(leads)-1]
	}
	return stats
}

// Leads returns the raw lead sequence in append order.
func (s *DashboardService) Leads(ctx context.Context) []models.Lead {
	return s.store.ListAll(ctx)
}

// ExportCSV renders all leads as a comma-separated download.
func (s *DashboardService) ExportCSV(ctx context.Context) ([]byte, error) {
	leads := s.store.ListAll(ctx)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Name", "Phone", "Score", "Interest", "Timestamp"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, lead := range leads {
		if err := w.Write([]string{lead.Name, lead.Phone, lead.Score, lead.Interest, lead.Timestamp}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// parseScore is deliberately tolerant: the sheet stores scores as text and
// older rows carry a trailing percent sign.
func parseScore(raw string) (float64, bool) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	score, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
