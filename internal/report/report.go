// Package report renders the downloadable student report card.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Score is printed green strictly above this value, red otherwise.
const greenThreshold = 75.0

// Generator renders PDF report cards. The banner image is optional; when the
// file is missing the header falls back to plain text.
type Generator struct {
	bannerPath string
	logger     *zap.Logger
}

func NewGenerator(bannerPath string, logger *zap.Logger) *Generator {
	return &Generator{bannerPath: bannerPath, logger: logger}
}

// ErrUnsupportedText reports characters the PDF core fonts cannot encode.
type ErrUnsupportedText struct {
	Field string
}

func (e *ErrUnsupportedText) Error() string {
	return fmt.Sprintf("report: %s contains characters outside Latin-1", e.Field)
}

func latin1Safe(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

// Render produces the report card bytes for one prediction. Name and advice
// must be Latin-1 encodable; anything else is rejected up front instead of
// producing a garbled document.
func (g *Generator) Render(name string, score float64, weakSubject, advice string) ([]byte, error) {
	if !latin1Safe(name) {
		return nil, &ErrUnsupportedText{Field: "name"}
	}
	if !latin1Safe(advice) || !latin1Safe(weakSubject) {
		return nil, &ErrUnsupportedText{Field: "advice"}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Branding header
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(46, 134, 193)
	pdf.CellFormat(0, 10, "Azeez Horizon: Official Report", "", 1, "C", false, 0, "")
	pdf.Line(10, 25, 200, 25)
	pdf.Ln(15)

	g.banner(pdf)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Name: %s | Date: %s", name, time.Now().Format("02-Jan-2006")), "", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 25)
	if score > greenThreshold {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(200, 50, 50)
	}
	pdf.CellFormat(0, 15, fmt.Sprintf("Predicted Score: %.1f%%", score), "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Evaluation: %s\n\nFocus Strategy: Since %s is your weak point, we have allocated 40%% of your study time to it in the schedule.",
		advice, weakSubject), "", "L", false)

	// Services footer
	pdf.SetY(-70)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 10, "  Powered by Azeez Horizon Services:", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 6,
		"1. Home Tuition (Class 1-10)\n2. Azeez Library (Premium Study Space)\n3. Azeez Classes (CBSE/ICSE Coaching)\n4. Student Mentorship & Career Guidance\n\nAddress: Behind IRFAN BTI House, Malik Tahir Pura, Mau U.P. 275101",
		"", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// banner draws the banner image when configured and readable, otherwise a
// text fallback. A broken banner never fails the report.
func (g *Generator) banner(pdf *fpdf.Fpdf) {
	if g.bannerPath != "" {
		if _, err := os.Stat(g.bannerPath); err == nil {
			pdf.ImageOptions(g.bannerPath, 10, 30, 190, 0, true, fpdf.ImageOptions{}, 0, "")
			pdf.Ln(5)
			return
		}
		g.logger.Warn("banner image unavailable, using text fallback", zap.String("path", g.bannerPath))
	}
	pdf.SetFont("Arial", "I", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, "Student Success Hub", "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

// Filename returns the download name for a student's report.
func Filename(name string) string {
	return fmt.Sprintf("%s_Report.pdf", name)
}
