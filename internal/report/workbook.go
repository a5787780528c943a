package report

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/windload"
	"github.com/xuri/excelize/v2"
)

// Row is one analyzed scenario in a result workbook. Result is nil or
// partial when Err is set.
type Row struct {
	Name     string
	Material string
	Params   params.StructuralParameters
	Result   *windload.AnalysisResult
	Err      error
}

// WindLoad returns the row's wind load when the analysis got as far as
// computing it. Zero is a valid wind load.
func (r Row) WindLoad() (float64, bool) {
	if r.Result == nil || !windload.Completed(r.Err, windload.StageWindLoad) {
		return 0, false
	}
	return r.Result.WindLoad, true
}

const resultSheet = "Results"

// WorkbookHeader returns the column titles of the result sheet.
func WorkbookHeader() []string {
	h := []string{"Name", "Material"}
	for _, f := range params.Fields {
		if u := f.Unit(); u != "" {
			h = append(h, fmt.Sprintf("%s (%s)", f.Label(), u))
		} else {
			h = append(h, f.Label())
		}
	}
	h = append(h, "Wind Load (N)")
	for _, m := range windload.Modes {
		h = append(h, m.String()+" (N)", m.String()+" Adjusted (N)", m.String()+" Verdict")
	}
	return append(h, "Error")
}

// WriteWorkbook saves one sheet with a row per scenario to path.
func WriteWorkbook(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultSheet); err != nil {
		return err
	}

	header := WorkbookHeader()
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(resultSheet, "A1", &headerCells); err != nil {
		return err
	}

	for i, r := range rows {
		cells := []interface{}{r.Name, r.Material}
		for _, fld := range params.Fields {
			cells = append(cells, r.Params.Get(fld))
		}
		if wl, ok := r.WindLoad(); ok {
			cells = append(cells, wl)
		} else {
			cells = append(cells, "")
		}
		for _, m := range windload.Modes {
			c, ok := windload.Check{}, false
			if r.Result != nil {
				c, ok = r.Result.Check(m)
			}
			if ok {
				cells = append(cells, c.Nominal, c.Adjusted, c.Verdict.String())
			} else {
				cells = append(cells, "", "", "")
			}
		}
		if r.Err != nil {
			cells = append(cells, r.Err.Error())
		} else {
			cells = append(cells, "")
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultSheet, cell, &cells); err != nil {
			return err
		}
	}

	if err := f.SetPanes(resultSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
