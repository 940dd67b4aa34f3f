package handler

import (
	"net/http"

	"Event_Admin/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{
		svc: service.NewStatsService(),
	}
}

// Overview 首页汇总数据
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "stats failed"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
