// Package export renders the catalog for the back office: a flat
// per-size inventory sheet as CSV or XLSX, and a ZIP of design images.
package export

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/threadspun/tailorstore/internal/domain"
)

var header = []string{"Name", "Fabric", "Color", "Child Category", "Category", "Size", "Stock"}

func rows(designs []domain.Design) [][]string {
	out := make([][]string, 0, len(designs)*32)
	for i := range designs {
		d := &designs[i]
		childType := string(d.ChildType)
		if childType == "" {
			childType = string(domain.ChildTypeNone)
		}
		for _, cat := range domain.Categories() {
			for _, size := range domain.SizesFor(cat) {
				out = append(out, []string{
					d.Name, d.Fabric, d.Color, childType,
					string(cat), size, fmt.Sprintf("%d", d.Inventory.Get(cat, size)),
				})
			}
		}
	}
	return out
}

// InventoryCSV streams one row per (design, category, size) cell. The
// name, fabric and color columns are free text, so the rows go through
// encoding/csv for proper quoting.
func InventoryCSV(w io.Writer, designs []domain.Design) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows(designs) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// InventoryXLSX builds the same sheet as a workbook.
func InventoryXLSX(designs []domain.Design) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Inventory"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")
	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, row := range rows(designs) {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ImagesZip bundles every design image reachable through open into a ZIP
// named after the design. Missing or remote images are skipped.
func ImagesZip(w io.Writer, designs []domain.Design, open func(path string) (io.ReadCloser, error)) error {
	zw := zip.NewWriter(w)
	for i := range designs {
		d := &designs[i]
		if d.ImageURL == "" {
			continue
		}
		rc, err := open(d.ImageURL)
		if err != nil {
			continue
		}
		name := safeName(d.Name) + "_" + shortID(d.ID.String()) + ext(d.ImageURL)
		f, err := zw.Create("design_images/" + name)
		if err != nil {
			rc.Close()
			return err
		}
		_, err = io.Copy(f, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return zw.Close()
}

func safeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

func ext(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		e := path[i:]
		if j := strings.IndexByte(e, '?'); j >= 0 {
			e = e[:j]
		}
		if len(e) <= 5 {
			return e
		}
	}
	return ".jpg"
}
