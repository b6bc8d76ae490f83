package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ShelfController struct{ *Srv }

func NewShelfController(s *Srv) *ShelfController { return &ShelfController{Srv: s} }

func (sc *ShelfController) ListShelves(c *gin.Context) {
	shelves, err := sc.Repo.ListShelves(c.Request.Context())
	if err != nil {
		sc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shelves)
}
