package spreadsheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"shelf_inventory/models"
)

type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindDate
)

// Cell 是按列换算之前的原始单元格值
type Cell struct {
	Kind   CellKind
	Str    string
	Number float64
	Time   time.Time
}

func TextCell(s string) Cell    { return Cell{Kind: KindText, Str: s} }
func NumberCell(n float64) Cell { return Cell{Kind: KindNumber, Number: n} }
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }
func (c Cell) IsEmpty() bool    { return c.Kind == KindEmpty }

// String 单元格的文本形式
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Str
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Time.UTC().Format(models.DateLayout)
	default:
		return ""
	}
}

// Int 四舍五入成整数；空、非数字、超出 int64 范围都按 0
func (c Cell) Int() int {
	var n float64
	switch c.Kind {
	case KindNumber:
		n = c.Number
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Str), 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	n = math.Round(n)
	// float64(MaxInt64) 实际是 2^63，已经溢出
	if n >= math.MaxInt64 || n < math.MinInt64 {
		return 0
	}
	return int(n)
}

type rowView []Cell

func (r rowView) get(col int) Cell {
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}

func (r rowView) empty() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
