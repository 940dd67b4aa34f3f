package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Event_Admin/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type UpdateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SetStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func NewUserHandler(pageSize, banDays int) *UserHandler {
	return &UserHandler{
		svc: service.NewUserService(pageSize, banDays),
	}
}

// pageParam 页码参数，缺省第 1 页
func pageParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}

// List 用户管理列表：?query=&status=&page=
func (h *UserHandler) List(c *gin.Context) {
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

// Update 改名/改邮箱，校验不过不发写
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SetStatus 启用/停用/封禁
func (h *UserHandler) SetStatus(c *gin.Context) {
	var req SetStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	change, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrBadStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "update failed"})
		return
	}

	c.JSON(http.StatusOK, change)
}
