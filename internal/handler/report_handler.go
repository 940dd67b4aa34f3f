package handler

import (
	"errors"
	"net/http"

	"Event_Admin/internal/middleware"
	"Event_Admin/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportHandler struct {
	svc *service.ReportService
}

type ResolveReq struct {
	Action string `json:"action" binding:"required"`
}

func NewReportHandler(pageSize, banDays int, sendMail func(to, reason string) error) *ReportHandler {
	return &ReportHandler{
		svc: service.NewReportService(pageSize, banDays, sendMail),
	}
}

// List 举报管理列表：?query=&status=&page=
func (h *ReportHandler) List(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid page"})
		return
	}

	view, err := h.svc.List(c.Request.Context(), c.Query("query"), c.Query("status"), page)
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

// Resolve 处置举报：review_event / user_banned / event_deleted / no_action
func (h *ReportHandler) Resolve(c *gin.Context) {
	var req ResolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	adminIDAny, _ := c.Get(middleware.ContextAdminIDKey)
	adminID, _ := adminIDAny.(string)

	report, err := h.svc.Resolve(c.Request.Context(), c.Param("id"), req.Action, adminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadAction):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		case errors.Is(err, service.ErrReportClosed):
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "report not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "resolve failed"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
