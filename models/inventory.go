// models/inventory.go
package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ItemTable  = "items"
	ShelfTable = "shelves"
	LevelTable = "levels"
)

// Shelf 是静态参考数据，seed 之后基本不变
type Shelf struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Number int     `gorm:"uniqueIndex;not null" json:"number"`
	Levels []Level `gorm:"foreignKey:ShelfID" json:"levels,omitempty"`
}

// Level 只属于一个 shelf；(shelf_id, number) 唯一
type Level struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ShelfID uint   `gorm:"not null;uniqueIndex:uq_levels_shelf_number,priority:1" json:"shelfId"`
	Number  int    `gorm:"not null;uniqueIndex:uq_levels_shelf_number,priority:2" json:"number"`
	Shelf   *Shelf `gorm:"foreignKey:ShelfID" json:"shelf,omitempty"`
}

type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	ArrivalDate *datatypes.Date `json:"arrivalDate"`
	// 没有备注存 ""，不存 NULL，导入去重要靠它比较
	Remark string `gorm:"type:text;not null;default:''" json:"remark"`

	ShelfID *uint  `gorm:"index" json:"shelfId"`
	Shelf   *Shelf `gorm:"foreignKey:ShelfID;constraint:OnDelete:SET NULL" json:"shelf"`
	LevelID *uint  `gorm:"index" json:"levelId"`
	Level   *Level `gorm:"foreignKey:LevelID;constraint:OnDelete:SET NULL" json:"level"`

	// 搜索用的小写名称；sqlite 的 LOWER() 只处理 ASCII
	NameKey string `gorm:"size:255;not null;default:'';index" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Shelf) TableName() string { return ShelfTable }
func (Level) TableName() string { return LevelTable }
func (Item) TableName() string  { return ItemTable }

// SearchKey 是 name_key 列和搜索词共用的归一化
func SearchKey(s string) string { return strings.ToLower(s) }

// BeforeCreate 补上 name_key；批量插入时每条都会调用
func (it *Item) BeforeCreate(tx *gorm.DB) error {
	it.NameKey = SearchKey(it.Name)
	return nil
}

// FormatLocation 生成 "N번 선반 M층"，任一为空返回 ""。不校验 level 是否真的在该 shelf 上
func FormatLocation(shelf *Shelf, level *Level) string {
	if shelf == nil || level == nil {
		return ""
	}
	return fmt.Sprintf("%d번 선반 %d층", shelf.Number, level.Number)
}

// Location 需要 Shelf / Level 已经 Preload
func (it Item) Location() string { return FormatLocation(it.Shelf, it.Level) }

// ItemSummary 搜索结果的一行
type ItemSummary struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	ArrivalDate *datatypes.Date `json:"arrivalDate"`
	Remark      string          `json:"remark"`
	Location    string          `json:"location"`
}

func (it Item) Summary() ItemSummary {
	return ItemSummary{
		ID:          it.ID,
		Name:        it.Name,
		Quantity:    it.Quantity,
		ArrivalDate: it.ArrivalDate,
		Remark:      it.Remark,
		Location:    it.Location(),
	}
}
