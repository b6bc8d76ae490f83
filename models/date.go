package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// 依次尝试；带时区的布局统一换算到 UTC 再取日期
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006. 1. 2.",
	"2006. 1. 2",
	"20060102",
	"1/2/2006",
}

// DateOf 去掉时分秒（按 UTC）
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return datatypes.Date{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return datatypes.Date{}, ErrInvalidDate
}

// FormatDate 输出 YYYY-MM-DD，nil 输出 ""
func FormatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(DateLayout)
}
