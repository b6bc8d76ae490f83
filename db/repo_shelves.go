package db

import (
	"context"

	"shelf_inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repo) ListShelves(ctx context.Context) ([]models.Shelf, error) {
	var shelves []models.Shelf
	err := r.DB.WithContext(ctx).
		Preload("Levels", func(tx *gorm.DB) *gorm.DB { return tx.Order("number") }).
		Order("number").
		Find(&shelves).Error
	return shelves, err
}

type SeedResult struct {
	Shelves int64 `json:"shelves"`
	Levels  int64 `json:"levels"`
}

// SeedShelves 补齐 1..shelfCount 号 shelf，每个带 1..levelCount 层。
// 已存在的行不动，可以重复执行
func (r *Repo) SeedShelves(ctx context.Context, shelfCount, levelCount int) (SeedResult, error) {
	var out SeedResult
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for n := 1; n <= shelfCount; n++ {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "number"}},
				DoNothing: true,
			}).Create(&models.Shelf{Number: n})
			if res.Error != nil {
				return res.Error
			}
			out.Shelves += res.RowsAffected
		}

		var shelves []models.Shelf
		if err := tx.Where("number BETWEEN ? AND ?", 1, shelfCount).Order("number").Find(&shelves).Error; err != nil {
			return err
		}
		for _, sh := range shelves {
			for lvl := 1; lvl <= levelCount; lvl++ {
				res := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "shelf_id"}, {Name: "number"}},
					DoNothing: true,
				}).Create(&models.Level{ShelfID: sh.ID, Number: lvl})
				if res.Error != nil {
					return res.Error
				}
				out.Levels += res.RowsAffected
			}
		}
		return nil
	})
	return out, err
}
