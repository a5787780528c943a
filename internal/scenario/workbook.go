package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet is returned when a workbook has no data rows.
var ErrEmptySheet = errors.New("empty sheet")

// LoadWorkbook reads scenarios from the first sheet of an XLSX workbook.
//
// The first row holds column labels: an optional "Name" and "Material"
// column plus one column per parameter label. Every following row is one
// scenario; blank cells are left unset.
func LoadWorkbook(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return ReadWorkbook(f)
}

// ReadWorkbook is LoadWorkbook over an open stream.
func ReadWorkbook(r io.Reader) ([]Scenario, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrEmptySheet)
	}

	header := rows[0]
	var out []Scenario
	for i, row := range rows[1:] {
		rowNo := i + 2
		if blank(row) {
			continue
		}
		sc := Scenario{Values: make(map[string]float64)}
		for col, cell := range row {
			if col >= len(header) {
				break
			}
			label := strings.TrimSpace(header[col])
			cell = strings.TrimSpace(cell)
			switch {
			case label == "" || cell == "":
				continue
			case strings.EqualFold(label, "name"):
				sc.Name = cell
			case strings.EqualFold(label, "material"):
				sc.Material = cell
			default:
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, fmt.Errorf("sheet %q row %d, %s: %q is not a number", sheet, rowNo, label, cell)
				}
				sc.Values[label] = v
			}
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("row %d", rowNo)
		}
		out = append(out, sc)
	}
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
