// controllers/item_controller.go
package controllers

import (
	"net/http"

	"shelf_inventory/errs"
	"shelf_inventory/models"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// 全部物品，带 shelf / level
func (ic *ItemController) ListItems(c *gin.Context) {
	items, err := ic.Repo.ListItems(c.Request.Context())
	if err != nil {
		ic.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// 按名称模糊搜索，返回带位置字符串的摘要
func (ic *ItemController) SearchItems(c *gin.Context) {
	items, err := ic.Repo.SearchItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		ic.respondError(c, err)
		return
	}
	out := make([]models.ItemSummary, 0, len(items))
	for _, it := range items {
		out = append(out, it.Summary())
	}
	c.JSON(http.StatusOK, out)
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	var in itemPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		ic.respondError(c, errs.InvalidArgument(err.Error()))
		return
	}
	it, err := in.toItem()
	if err != nil {
		ic.respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	if err := ic.Repo.CreateItem(ctx, it); err != nil {
		ic.respondError(c, err)
		return
	}
	ic.invalidateExport(ctx)
	c.JSON(http.StatusCreated, it)
}

// 只更新请求体里出现的字段
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, err := ic.idParam(c)
	if err != nil {
		ic.respondError(c, err)
		return
	}
	var in itemPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		ic.respondError(c, errs.InvalidArgument(err.Error()))
		return
	}
	fields, err := in.toFields()
	if err != nil {
		ic.respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	it, err := ic.Repo.UpdateItem(ctx, id, fields)
	if err != nil {
		ic.respondError(c, err)
		return
	}
	ic.invalidateExport(ctx)
	c.JSON(http.StatusOK, it)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := ic.idParam(c)
	if err != nil {
		ic.respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	if err := ic.Repo.DeleteItem(ctx, id); err != nil {
		ic.respondError(c, err)
		return
	}
	ic.invalidateExport(ctx)
	c.Status(http.StatusNoContent)
}
