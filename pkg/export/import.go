package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/store"
)

// Import reads an archive produced by Range back into a snapshot. Rows with
// a missing or malformed date are skipped one by one, never failing the
// batch; Skipped reports how many were dropped. Content is cleaned the same
// way an edit commit is before it reaches the store.
func Import(r io.ReaderAt, size int64) (snap store.Snapshot, skipped int, err error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return store.Snapshot{}, 0, fmt.Errorf("open archive: %w", err)
	}

	snap = store.Snapshot{
		Events:   map[dates.Key]string{},
		Holidays: map[dates.Key]string{},
	}
	lines := map[dates.Key][]content.Line{}

	for _, entry := range zr.File {
		if !strings.HasSuffix(entry.Name, ".xlsx") {
			continue
		}
		rows, err := sheetRows(entry)
		if err != nil {
			return store.Snapshot{}, 0, fmt.Errorf("%s: %w", entry.Name, err)
		}
		for _, cells := range rows {
			d, ok := rowDate(cells)
			if !ok {
				skipped++
				continue
			}
			if text := cell(cells, 1); text != "" {
				lines[d] = append(lines[d], content.Line{
					Done: strings.EqualFold(cell(cells, 2), "true"),
					Text: text,
				})
			}
			if name := cell(cells, 3); name != "" && snap.Holidays[d] == "" {
				snap.Holidays[d] = name
			}
		}
	}

	for d, ls := range lines {
		if text := content.Clean(content.Serialize(ls)); text != "" {
			snap.Events[d] = text
		}
	}
	return snap, skipped, nil
}

// sheetRows returns the data rows of one monthly workbook, header excluded.
func sheetRows(entry *zip.File) ([][]string, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}

func rowDate(cells []string) (dates.Key, bool) {
	d, err := dates.Parse(cell(cells, 0))
	if err != nil {
		return "", false
	}
	return d, true
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
