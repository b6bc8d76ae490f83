package db

import (
	"fmt"
	"strings"
	"time"

	"shelf_inventory/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	// silent / error / warn / info
	LogLevel string
}

var gormLogLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

func dialector(cfg Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// Connect 打开所有请求共用的连接池，不放全局变量
func Connect(cfg Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	level, ok := gormLogLevels[strings.ToLower(cfg.LogLevel)]
	if !ok {
		level = logger.Warn
	}

	conn, err := gorm.Open(d, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	return conn, nil
}

// DedupIndex 导入去重依赖的唯一索引。没有入库日的行用固定日期参与比较，
// 否则 NULL 彼此不相等，同一行会被重复导入
const DedupIndex = "uq_items_import_key"

// 旧版本在 (name, arrival_date, remark) 上直接建的索引
const legacyDedupIndex = "uq_items_name_date_remark"

const noDateSentinel = "0001-01-01"

func Migrate(db *gorm.DB) error {
	// remark 改成 NOT NULL 之前先把旧数据里的 NULL 补成 ""
	if db.Migrator().HasTable(&models.Item{}) && db.Migrator().HasColumn(&models.Item{}, "remark") {
		if err := db.Exec(fmt.Sprintf(
			`UPDATE %s SET remark = '' WHERE remark IS NULL`, models.ItemTable,
		)).Error; err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(&models.Shelf{}, &models.Level{}, &models.Item{}); err != nil {
		return err
	}

	if err := db.Exec(fmt.Sprintf(`DROP INDEX IF EXISTS %s`, legacyDedupIndex)).Error; err != nil {
		return err
	}
	if err := db.Exec(fmt.Sprintf(`DROP INDEX IF EXISTS %s_lower_name`, models.ItemTable)).Error; err != nil {
		return err
	}

	// 导入去重：同名、同入库日、同供应商视为同一条
	if err := db.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s
	  ON %s (name, (COALESCE(arrival_date, '%s')), remark);
	`, DedupIndex, models.ItemTable, noDateSentinel)).Error; err != nil {
		return err
	}

	return backfillNameKeys(db)
}

// backfillNameKeys 给旧数据补 name_key；在 Go 里做小写，和搜索词保持一致
func backfillNameKeys(db *gorm.DB) error {
	var pending []models.Item
	return db.Select("id", "name").
		Where("name_key = '' AND name <> ''").
		FindInBatches(&pending, 500, func(tx *gorm.DB, _ int) error {
			for _, it := range pending {
				if err := db.Model(&models.Item{}).Where("id = ?", it.ID).
					UpdateColumn("name_key", models.SearchKey(it.Name)).Error; err != nil {
					return err
				}
			}
			return nil
		}).Error
}
