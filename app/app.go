package app

import (
	"context"
	"time"

	"shelf_inventory/cache"
	"shelf_inventory/config"
	"shelf_inventory/db"
	"shelf_inventory/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Repo   *db.Repo
	Export *cache.ExportCache
	Log    *zap.Logger
	Config config.Config
}

// New 连数据库（配置了就连 redis）、迁移、构建路由
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	dbConn, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	return Build(cfg, log, dbConn, connectRedis(cfg, log)), nil
}

// redis 只用于导出缓存，连不上就关掉缓存，不影响启动
func connectRedis(cfg config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, export cache disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis not reachable, export cache disabled", zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Build 用已经打开的连接组装 App；rdb 可以为 nil
func Build(cfg config.Config, log *zap.Logger, dbConn *gorm.DB, rdb *redis.Client) *App {
	r := gin.New()
	r.Use(logger.GinMiddleware(log), gin.Recovery())
	useCORS(r, cfg.WebOrigins)

	return &App{
		Router: r,
		DB:     dbConn,
		RDB:    rdb,
		Repo:   db.NewRepo(dbConn),
		Export: cache.NewExportCache(rdb, cfg.ExportCacheTTL),
		Log:    log,
		Config: cfg,
	}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.Log.Sync()
}
