// Package export renders drone usage statements as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"farmapi/pkg/billing/service"
)

const (
	SheetName   = "Statement"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var cropHeader = []any{"Crop ID", "Crop", "Total acreage", "Drone usage acreage", "Products used", "Quantity used"}

// WriteXLSX writes st as a single-sheet workbook: farmer details, one row per
// crop, then the billed acreage and amount.
func WriteXLSX(w io.Writer, st *service.Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}

	rows := [][]any{
		{"Farmer", st.Farmer.Name},
		{"Mobile", st.Farmer.Mobile},
		{"Address", st.Farmer.Address},
		{"Rate per acre", st.RatePerAcre},
		{},
		cropHeader,
	}
	headerRow := len(rows)
	for _, c := range st.Crops {
		rows = append(rows, []any{c.ID, c.CropName, c.TotalAcreage, c.DroneUsageAcreage, c.ProductsUsed, c.QuantityUsed})
	}
	rows = append(rows,
		[]any{},
		[]any{"Total drone usage acreage", nil, nil, st.Usage.TotalDroneUsageAcreage},
		[]any{"Total amount", nil, nil, st.Usage.TotalAmount},
	)

	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &r); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	from, _ := excelize.CoordinatesToCellName(1, headerRow)
	to, _ := excelize.CoordinatesToCellName(len(cropHeader), headerRow)
	if err := f.SetCellStyle(SheetName, from, to, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "F", 20); err != nil {
		return fmt.Errorf("col width: %w", err)
	}
	return f.Write(w)
}
