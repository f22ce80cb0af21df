package ifreport

import (
	"strings"
	"unicode"

	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// Column is one header field of a fixed-width table. Start and End are
// character offsets; End is -1 for the last column, which runs to end of line.
type Column struct {
	Name  string
	Start int
	End   int
}

// DetectColumns derives column spans from a fixed-width header line. Every
// maximal run of non-space characters is a column name, and each column
// extends up to the start of the next one.
func DetectColumns(header string) []Column {
	var cols []Column
	start := -1
	runes := []rune(header)
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if start >= 0 {
				cols = append(cols, Column{Name: string(runes[start:i]), Start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		cols = append(cols, Column{Name: string(runes[start:]), Start: start})
	}

	for i := range cols {
		if i+1 < len(cols) {
			cols[i].End = cols[i+1].Start
		} else {
			cols[i].End = -1
		}
	}
	return cols
}

// Slice returns the trimmed text of row that falls inside the column.
// Spans past the end of a short row yield "".
func (c Column) Slice(row []rune) string {
	if c.Start >= len(row) {
		return ""
	}
	end := c.End
	if end < 0 || end > len(row) {
		end = len(row)
	}
	return strings.TrimSpace(string(row[c.Start:end]))
}

// SliceRow splits a data row by cols into a name -> value map. Duplicate
// column names keep the rightmost value.
func SliceRow(cols []Column, row string) map[string]string {
	runes := []rune(row)
	vals := make(map[string]string, len(cols))
	for _, c := range cols {
		vals[c.Name] = c.Slice(runes)
	}
	return vals
}

// ParseInterfaceStatus parses "show interfaces status" output. Line 0 is the
// header; blank lines are skipped. The result maps the normalized Port
// column to the Status column.
func ParseInterfaceStatus(lines []string) map[string]StatusRecord {
	return ParseInterfaceStatusWith(lines, util.NormalizeInterfaceName)
}

// ParseInterfaceStatusWith is ParseInterfaceStatus with a caller-chosen name
// normalizer.
func ParseInterfaceStatusWith(lines []string, normalize func(string) string) map[string]StatusRecord {
	result := make(map[string]StatusRecord)
	if len(lines) == 0 {
		return result
	}

	cols := DetectColumns(lines[0])
	log := util.WithReport(ReportInterfaceStatus)
	if len(cols) < 2 {
		log.Debugf("header has %d columns, rows will be sliced as-is", len(cols))
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := SliceRow(cols, line)
		port := row["Port"]
		if port == "" {
			continue
		}
		result[normalize(port)] = StatusRecord{Status: row["Status"]}
	}

	log.Debugf("parsed %d ports", len(result))
	return result
}
