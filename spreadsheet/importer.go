package spreadsheet

import (
	"fmt"
	"math"
	"strings"
	"time"

	"shelf_inventory/errs"
	"shelf_inventory/models"

	"gorm.io/datatypes"
)

const (
	HeaderName       = "내역"
	HeaderDate       = "요청일"
	HeaderSupplier   = "공급업체명"
	HeaderRequestQty = "요청수량"
	HeaderWorkQty    = "작지수량"
)

var requiredHeaders = []string{HeaderName, HeaderDate, HeaderSupplier}

// 1970-01-01 的序列号：1900 日期系统是 25569，1904 日期系统少 1462 天
const (
	unixEpochSerial     = 25569
	unixEpochSerial1904 = unixEpochSerial - 1462
	msPerDay            = 86400000
)

// SerialToDate 把表格日期序列号换成日期（UTC）
func SerialToDate(serial float64, date1904 bool) datatypes.Date {
	epoch := float64(unixEpochSerial)
	if date1904 {
		epoch = unixEpochSerial1904
	}
	ms := math.Round((serial - epoch) * msPerDay)
	return models.DateOf(time.UnixMilli(int64(ms)))
}

// HeaderMap 表头文本（去空白）→ 列号（从 0 开始）。非文本单元格忽略，重名取最后一列
func HeaderMap(header []Cell) map[string]int {
	m := make(map[string]int, len(header))
	for col, c := range header {
		if c.Kind != KindText {
			continue
		}
		m[strings.TrimSpace(c.Str)] = col
	}
	return m
}

type columns struct {
	name, date, supplier, quantity int
}

func resolveColumns(header map[string]int) (columns, error) {
	for _, h := range requiredHeaders {
		if _, ok := header[h]; !ok {
			return columns{}, errs.InvalidArgument(fmt.Sprintf(`칼럼 "%s"이(가) 없습니다.`, h))
		}
	}
	qty, ok := header[HeaderRequestQty]
	if !ok {
		qty, ok = header[HeaderWorkQty]
	}
	if !ok {
		return columns{}, errs.InvalidArgument(
			fmt.Sprintf(`칼럼 "%s" 또는 "%s" 중 하나가 필요합니다.`, HeaderRequestQty, HeaderWorkQty))
	}
	return columns{
		name:     header[HeaderName],
		date:     header[HeaderDate],
		supplier: header[HeaderSupplier],
		quantity: qty,
	}, nil
}

// ParseItems 把工作表转成待插入的物品。表头问题在读任何数据行之前就报错；
// 导入的物品没有 shelf / level
func ParseItems(sheet *Sheet) ([]models.Item, error) {
	var rows [][]Cell
	if sheet != nil {
		rows = sheet.Rows
	}
	var header []Cell
	if len(rows) > 0 {
		header = rows[0]
	}
	cols, err := resolveColumns(HeaderMap(header))
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		r := rowView(rows[i])
		if r.empty() {
			continue
		}
		items = append(items, models.Item{
			Name:        strings.TrimSpace(r.get(cols.name).String()),
			Quantity:    r.get(cols.quantity).Int(),
			ArrivalDate: arrivalDate(r.get(cols.date), sheet.Date1904),
			Remark:      strings.TrimSpace(r.get(cols.supplier).String()),
		})
	}
	return items, nil
}

// arrivalDate：数字按序列号，日期直接用，其他转文本再解析；解析不了存 NULL
func arrivalDate(c Cell, date1904 bool) *datatypes.Date {
	var d datatypes.Date
	switch c.Kind {
	case KindNumber:
		d = SerialToDate(c.Number, date1904)
	case KindDate:
		d = models.DateOf(c.Time)
	default:
		parsed, err := models.ParseDate(c.String())
		if err != nil {
			return nil
		}
		d = parsed
	}
	return &d
}
