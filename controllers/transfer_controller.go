// controllers/transfer_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"shelf_inventory/app"
	"shelf_inventory/errs"
	"shelf_inventory/spreadsheet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const importFileField = "file"

type TransferController struct{ *Srv }

func NewTransferController(s *Srv) *TransferController { return &TransferController{Srv: s} }

// ExportItems 先查缓存，没有再渲染并回填
func (tc *TransferController) ExportItems(c *gin.Context) {
	ctx := c.Request.Context()

	b, hit, err := tc.Export.Get(ctx)
	if err != nil {
		tc.Log.Warn("export cache read failed", zap.Error(err))
	}
	if !hit {
		items, err := tc.Repo.ListItems(ctx)
		if err != nil {
			tc.respondError(c, errs.Internal(err))
			return
		}
		if b, err = spreadsheet.RenderItems(items); err != nil {
			tc.respondError(c, errs.Internal(err))
			return
		}
		if err := tc.Export.Set(ctx, b); err != nil {
			tc.Log.Warn("export cache write failed", zap.Error(err))
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, spreadsheet.ExportFilename))
	c.Data(http.StatusOK, spreadsheet.ContentType, b)
}

func (tc *TransferController) ImportItems(c *gin.Context) {
	fh, err := c.FormFile(importFileField)
	if err != nil {
		tc.respondError(c, errs.InvalidArgument("엑셀 파일이 필요합니다."))
		return
	}
	f, err := fh.Open()
	if err != nil {
		tc.respondError(c, errs.Internal(err))
		return
	}
	defer f.Close()

	sheet, err := spreadsheet.ReadFirstSheet(f)
	if err != nil {
		tc.respondError(c, errs.Internal(err))
		return
	}
	items, err := spreadsheet.ParseItems(sheet)
	if err != nil {
		tc.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	n, err := tc.Repo.InsertItemsSkipDuplicates(ctx, items)
	if err != nil {
		tc.respondError(c, errs.Internal(err))
		return
	}
	if n > 0 {
		tc.invalidateExport(ctx)
	}
	tc.Log.Info("items imported",
		zap.String("filename", fh.Filename),
		zap.Int("rows", len(items)),
		zap.Int64("imported", n),
	)
	c.JSON(http.StatusOK, app.H{"success": true, "imported": n})
}
