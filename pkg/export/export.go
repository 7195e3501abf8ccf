// Package export writes a date range out as an archive of per-month
// spreadsheets and reads such archives back in. One workbook per month, one
// row per task line, plus a bare row for days that are holidays with no
// content. Months with nothing to say produce no workbook.
package export

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/store"
)

// SheetName is the single worksheet each monthly workbook carries.
const SheetName = "Schedule"

var header = []string{"Date", "Content", "Completed", "HolidayName"}

type row struct {
	date      dates.Key
	text      string
	completed bool
	holiday   string
}

// Range writes every day in [from, to] into w as a zip of monthly xlsx
// files named YYYY-MM.xlsx.
func Range(from, to dates.Key, snap store.Snapshot, w io.Writer) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("invalid range %q..%q", from, to)
	}
	if to < from {
		from, to = to, from
	}

	months := map[string][]row{}
	var order []string
	for d := from; d <= to; d = d.AddDays(1) {
		rs := dayRows(d, snap)
		if len(rs) == 0 {
			continue
		}
		ym := string(d)[:7]
		if _, seen := months[ym]; !seen {
			order = append(order, ym)
		}
		months[ym] = append(months[ym], rs...)
	}

	zw := zip.NewWriter(w)
	for _, ym := range order {
		f, err := zw.Create(ym + ".xlsx")
		if err != nil {
			return err
		}
		if err := writeMonth(f, months[ym]); err != nil {
			return fmt.Errorf("month %s: %w", ym, err)
		}
	}
	return zw.Close()
}

func dayRows(d dates.Key, snap store.Snapshot) []row {
	text := snap.Events[d]
	holiday := snap.Holidays[d]

	lines := content.Parse(text)
	if len(lines) == 0 {
		if holiday == "" {
			return nil
		}
		// Holiday with no tasks still earns a row.
		return []row{{date: d, holiday: holiday}}
	}
	out := make([]row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row{date: d, text: l.Text, completed: l.Done, holiday: holiday})
	}
	return out
}

func writeMonth(w io.Writer, rows []row) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}
	for i, r := range rows {
		values := []interface{}{string(r.date), r.text, r.completed, r.holiday}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}
	_, err := f.WriteTo(w)
	return err
}
