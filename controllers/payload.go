package controllers

import (
	"bytes"
	"encoding/json"
	"strings"

	"shelf_inventory/errs"
	"shelf_inventory/models"

	"gorm.io/datatypes"
)

// optional 记录 JSON 里是否出现过这个键：`"shelfId": null` 清空列，没出现则不动
type optional[T any] struct {
	Set   bool
	Value *T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// itemPayload 没有 id 字段，客户端传的 id 解码时直接丢掉。
// name / remark 和导入一样去掉首尾空白，导出再导入才能对上去重键
type itemPayload struct {
	Name        optional[string] `json:"name"`
	Quantity    optional[int]    `json:"quantity"`
	ArrivalDate optional[string] `json:"arrivalDate"`
	Remark      optional[string] `json:"remark"`
	ShelfID     optional[uint]   `json:"shelfId"`
	LevelID     optional[uint]   `json:"levelId"`
}

func (p itemPayload) toItem() (*models.Item, error) {
	if p.Name.Value == nil || strings.TrimSpace(*p.Name.Value) == "" {
		return nil, errs.InvalidArgument("name is required")
	}
	it := &models.Item{
		Name:    strings.TrimSpace(*p.Name.Value),
		Remark:  p.remark(),
		ShelfID: p.ShelfID.Value,
		LevelID: p.LevelID.Value,
	}
	if p.Quantity.Value != nil {
		it.Quantity = *p.Quantity.Value
	}
	d, err := p.arrivalDate()
	if err != nil {
		return nil, err
	}
	if d != nil {
		it.ArrivalDate = d
	}
	return it, nil
}

// toFields 只包含客户端传了的列
func (p itemPayload) toFields() (map[string]any, error) {
	fields := map[string]any{}
	if p.Name.Set {
		if p.Name.Value == nil || strings.TrimSpace(*p.Name.Value) == "" {
			return nil, errs.InvalidArgument("name must not be empty")
		}
		fields["name"] = strings.TrimSpace(*p.Name.Value)
	}
	if p.Quantity.Set {
		q := 0
		if p.Quantity.Value != nil {
			q = *p.Quantity.Value
		}
		fields["quantity"] = q
	}
	if p.ArrivalDate.Set {
		d, err := p.arrivalDate()
		if err != nil {
			return nil, err
		}
		if d == nil {
			fields["arrival_date"] = nil
		} else {
			fields["arrival_date"] = *d
		}
	}
	if p.Remark.Set {
		fields["remark"] = p.remark()
	}
	if p.ShelfID.Set {
		fields["shelf_id"] = nullable(p.ShelfID.Value)
	}
	if p.LevelID.Set {
		fields["level_id"] = nullable(p.LevelID.Value)
	}
	return fields, nil
}

// remark 为 null 或缺省时存 ""
func (p itemPayload) remark() string {
	if p.Remark.Value == nil {
		return ""
	}
	return strings.TrimSpace(*p.Remark.Value)
}

// arrivalDate：null 或 "" 表示没有日期，其他值必须能解析
func (p itemPayload) arrivalDate() (*datatypes.Date, error) {
	v := p.ArrivalDate.Value
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(*v)
	if err != nil {
		return nil, errs.InvalidArgument("invalid arrivalDate: " + *v)
	}
	return &d, nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
