package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"timesheet-assistant/pkg/taskparser"
)

const (
	// DefaultSheetName is the title of the single timesheet sheet.
	DefaultSheetName = "Timesheet"
)

// Header is the fixed header row of every exported timesheet.
var Header = []string{"Date", "Task", "Hours"}

// Options tunes the workbook layout.
type Options struct {
	SheetName string
}

// Render builds a single-sheet workbook: a bold header row followed by one
// row per entry, in order.
func Render(entries []taskparser.Entry, opts Options) ([]byte, error) {
	sheetName := opts.SheetName
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	originalSheet := file.GetSheetName(0)
	if err := file.SetSheetName(originalSheet, sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeHeader(file, sheetName); err != nil {
		return nil, err
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("convert row cell: %w", err)
		}
		row := []any{e.Date, e.Task, e.Hours}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := setColumnWidths(file, sheetName); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func writeHeader(file *excelize.File, sheetName string) error {
	for idx, title := range Header {
		cell, err := excelize.CoordinatesToCellName(idx+1, 1)
		if err != nil {
			return fmt.Errorf("convert header cell: %w", err)
		}
		if err := file.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("write header %s: %w", cell, err)
		}
	}

	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := file.SetCellStyle(sheetName, "A1", "C1", style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	return nil
}

func setColumnWidths(file *excelize.File, sheetName string) error {
	if err := file.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return fmt.Errorf("set width for A: %w", err)
	}
	if err := file.SetColWidth(sheetName, "B", "B", 60); err != nil {
		return fmt.Errorf("set width for B: %w", err)
	}
	if err := file.SetColWidth(sheetName, "C", "C", 10); err != nil {
		return fmt.Errorf("set width for C: %w", err)
	}
	return nil
}
