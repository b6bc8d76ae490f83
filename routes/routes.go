package routes

import (
	"net/http"

	"shelf_inventory/app"
	"shelf_inventory/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	itemCtl := controllers.NewItemController(s)
	transferCtl := controllers.NewTransferController(s)
	shelfCtl := controllers.NewShelfController(s)

	r.GET("/healthz", func(c *app.Ctx) { c.JSON(http.StatusOK, app.H{"ok": true}) })

	api := r.Group("/api")

	// ------------------------------
	// 物品 CRUD
	// ------------------------------
	items := api.Group("/items")
	{
		items.GET("", itemCtl.ListItems)
		items.GET("/search", itemCtl.SearchItems)
		items.POST("", itemCtl.CreateItem)
		items.PUT("/:id", itemCtl.UpdateItem)
		items.DELETE("/:id", itemCtl.DeleteItem)
	}

	// ------------------------------
	// xlsx 导入导出
	// ------------------------------
	api.GET("/export", transferCtl.ExportItems)
	api.POST("/import", transferCtl.ImportItems)

	api.GET("/shelves", shelfCtl.ListShelves)
}
