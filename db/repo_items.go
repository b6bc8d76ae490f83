// db/repo_items.go
package db

import (
	"context"
	"errors"
	"strings"

	"shelf_inventory/errs"
	"shelf_inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const importBatchSize = 200

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func withLocation(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Shelf").Preload("Level")
}

// 同名同日同备注已存在时返回 409，而不是裸的唯一约束错误
func duplicateItem(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.AlreadyExists("item with the same name, arrival date and remark already exists", err)
	}
	return err
}

func (r *Repo) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := withLocation(r.DB.WithContext(ctx)).Order("id").Find(&items).Error
	return items, err
}

// SearchItems 按名称做不区分大小写的子串匹配，q 为空返回全部
func (r *Repo) SearchItems(ctx context.Context, q string) ([]models.Item, error) {
	tx := withLocation(r.DB.WithContext(ctx)).Order("id")
	if q != "" {
		pat := "%" + likeEscaper.Replace(models.SearchKey(q)) + "%"
		tx = tx.Where(`name_key LIKE ? ESCAPE '\'`, pat)
	}
	var items []models.Item
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem 忽略调用方给的 ID，由数据库分配
func (r *Repo) CreateItem(ctx context.Context, it *models.Item) error {
	it.ID = 0
	return duplicateItem(r.DB.WithContext(ctx).Omit(clause.Associations).Create(it).Error)
}

// UpdateItem 只更新给出的列，然后带位置重新读一遍
func (r *Repo) UpdateItem(ctx context.Context, id uint, fields map[string]any) (*models.Item, error) {
	var it models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&it, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("item %d not found", id)
			}
			return err
		}
		delete(fields, "id")
		delete(fields, "name_key")
		if name, ok := fields["name"].(string); ok {
			fields["name_key"] = models.SearchKey(name)
		}
		if len(fields) > 0 {
			if err := tx.Model(&it).Updates(fields).Error; err != nil {
				return duplicateItem(err)
			}
		}
		return withLocation(tx).First(&it, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repo) DeleteItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("item %d not found", id)
	}
	return nil
}

// InsertItemsSkipDuplicates 批量插入，撞上唯一约束的行由数据库直接跳过。
// 返回实际插入的行数
func (r *Repo) InsertItemsSkipDuplicates(ctx context.Context, items []models.Item) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	var inserted int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(&items, importBatchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	return inserted, err
}
