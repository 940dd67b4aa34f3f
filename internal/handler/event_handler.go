package handler

import (
	"errors"
	"net/http"

	"Event_Admin/internal/middleware"
	"Event_Admin/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(pageSize int) *EventHandler {
	return &EventHandler{
		svc: service.NewEventService(pageSize),
	}
}

// List 活动管理列表：?query=&type=&page=
func (h *EventHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid page"})
		return
	}

	view, err := h.svc.List(c.Request.Context(), c.Query("query"), c.Query("type"), page)
	if err != nil {
		if errors.Is(err, service.ErrPageOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "page out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Delete 删除活动，硬删除
func (h *EventHandler) Delete(c *gin.Context) {
	adminIDAny, _ := c.Get(middleware.ContextAdminIDKey)
	adminID, _ := adminIDAny.(string)

	err := h.svc.Delete(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
