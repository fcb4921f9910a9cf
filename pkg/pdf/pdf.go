package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"timesheet-assistant/pkg/taskparser"
)

const (
	fontFamily = "Helvetica"
	rowHeight  = 8.0
	padding    = 2.0
)

// column widths in mm; they add up to the letter page width minus margins.
var (
	header  = []string{"Date", "Task", "Hours"}
	columns = []float64{35, 130, 25}
)

// Render draws the entries as a single table: grey header with white bold
// text, a full grid and centered cells.
func Render(entries []taskparser.Entry) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetTitle("Timesheet", true)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont(fontFamily, "B", 11)
	doc.SetFillColor(128, 128, 128)
	doc.SetTextColor(245, 245, 245)
	doc.SetDrawColor(0, 0, 0)
	for i, title := range header {
		doc.CellFormat(columns[i], rowHeight+padding, title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont(fontFamily, "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, e := range entries {
		cells := []string{e.Date, fit(doc, tr, e.Task, columns[1]-padding), strconv.Itoa(e.Hours)}
		for i, txt := range cells {
			doc.CellFormat(columns[i], rowHeight, txt, "1", 0, "C", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fit truncates the UTF-8 label s with an ellipsis until its translated form
// is no wider than width, and returns the translated result.
func fit(doc *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	if out := tr(s); doc.GetStringWidth(out) <= width {
		return out
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := tr(string(runes) + "...")
		if doc.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
