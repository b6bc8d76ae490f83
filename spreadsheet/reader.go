package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	excelize "github.com/xuri/excelize/v2"
)

var isoCellLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Sheet 是第一个工作表的全部单元格，Rows[0] 是表头
type Sheet struct {
	Rows [][]Cell
	// 工作簿用 1904 日期系统（老版 Mac Excel），序列号要换基准
	Date1904 bool
}

// ReadFirstSheet 整个工作簿读进内存，只取第一个工作表
func ReadFirstSheet(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no worksheets")
	}
	sheet := sheets[0]

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("read workbook properties: %w", err)
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	out := make([][]Cell, len(raw))
	for i, values := range raw {
		cells := make([]Cell, len(values))
		for j, v := range values {
			if v == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheet, name)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", name, err)
			}
			cells[j] = classify(typ, v)
		}
		out[i] = cells
	}
	return &Sheet{
		Rows:     out,
		Date1904: props.Date1904 != nil && *props.Date1904,
	}, nil
}

func classify(typ excelize.CellType, v string) Cell {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return TextCell(v)
	case excelize.CellTypeDate:
		for _, layout := range isoCellLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return DateCell(t)
			}
		}
		return TextCell(v)
	case excelize.CellTypeBool:
		// 布尔值按显示文本处理，不参与日期/数量换算
		if v == "1" || strings.EqualFold(v, "true") {
			return TextCell("TRUE")
		}
		return TextCell("FALSE")
	default:
		// 数字单元格没有 t 属性；日期格式的单元格原始值也是序列号
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return NumberCell(n)
		}
		return TextCell(v)
	}
}
