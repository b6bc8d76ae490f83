package spreadsheet

import (
	"fmt"

	"shelf_inventory/models"

	excelize "github.com/xuri/excelize/v2"
)

const (
	SheetName      = "Items"
	ExportFilename = "items.xlsx"
	ContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ExportHeader = []any{"이름", "수량", "입고일", "비고", "위치"}

// RenderItems 在内存里生成导出工作簿；位置列需要 Shelf / Level 已经 Preload
func RenderItems(items []models.Item) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	header := append([]any(nil), ExportHeader...)
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			it.Name,
			it.Quantity,
			models.FormatDate(it.ArrivalDate),
			it.Remark,
			it.Location(),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
