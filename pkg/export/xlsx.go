// Package export renders merged interface rows as a spreadsheet, JSON or a
// terminal table.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/newtron-network/ios2xlsx/pkg/ifreport"
)

const (
	// FileName is the default spreadsheet name.
	FileName = "switch_interfaces.xlsx"
	// MIMEType is the content type of the spreadsheet.
	MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// SheetName is the single worksheet written.
	SheetName = "Sheet1"

	maxColWidth = 60
)

// NewWorkbook builds an in-memory workbook: a bold header row with the
// column names, then one row per MergedRow. Empty values are left as blank
// cells. The caller must Close the returned file.
func NewWorkbook(rows []ifreport.MergedRow) (*excelize.File, error) {
	f := excelize.NewFile()

	header := make([]interface{}, len(ifreport.Columns))
	widths := make([]int, len(ifreport.Columns))
	for i, c := range ifreport.Columns {
		header[i] = c
		widths[i] = utf8.RuneCountInString(c)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for r, row := range rows {
		vals := row.Values()
		cells := make([]interface{}, len(vals))
		for i, v := range vals {
			if v != "" {
				cells[i] = v
			}
			if n := utf8.RuneCountInString(v); n > widths[i] {
				widths[i] = n
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", r+1, err)
		}
	}

	if err := styleSheet(f, widths); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func styleSheet(f *excelize.File, widths []int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := f.SetColWidth(SheetName, col, col, float64(w+2)); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}
	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// WriteXLSX writes the spreadsheet for rows to w.
func WriteXLSX(w io.Writer, rows []ifreport.MergedRow) error {
	f, err := NewWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveXLSX writes the spreadsheet to path, creating parent directories.
func SaveXLSX(path string, rows []ifreport.MergedRow) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteXLSX(out, rows); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
