package controller

import (
	"net/http"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store repository.Store
}

func NewHealthController(store repository.Store) *HealthController {
	return &HealthController{Store: store}
}

// @Summary Health check
// @Description Reports service status and probes the backing store
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// A missing slot is a healthy store; only transport errors count.
	if _, _, err := c.Store.Load(ctx.Request.Context(), repository.ProgressSlotKey); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": "up",
		},
	})
}
