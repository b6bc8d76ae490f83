// controllers/srv.go
package controllers

import (
	"context"
	"strconv"

	"shelf_inventory/app"
	"shelf_inventory/cache"
	"shelf_inventory/db"
	"shelf_inventory/errs"
	"shelf_inventory/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Srv struct {
	Repo   *db.Repo
	Export *cache.ExportCache
	Log    *zap.Logger
}

func GetSrv(a *app.App) *Srv {
	return &Srv{Repo: a.Repo, Export: a.Export, Log: a.Log}
}

// --- helpers ---

// respondError 统一把错误码映射成 HTTP 状态；5xx 记日志
func (s *Srv) respondError(c *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	if status >= 500 {
		s.Log.Error("handler failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("request_id", logger.RequestID(c)),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
	c.JSON(status, app.H{"error": err.Error()})
}

func (s *Srv) idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.InvalidArgument("invalid item id")
	}
	return uint(id), nil
}

// 写操作之后丢掉导出缓存；失败只记日志
func (s *Srv) invalidateExport(ctx context.Context) {
	if err := s.Export.Invalidate(ctx); err != nil {
		s.Log.Warn("export cache invalidate failed", zap.Error(err))
	}
}
