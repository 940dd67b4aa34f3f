package handler

import (
	"net/http"

	"Event_Admin/internal/middleware"
	"Event_Admin/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		svc: service.NewAuthService(),
	}
}

// Login 登录接口。非 admin 统一 403，不发 token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	outcome, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}
	if !outcome.Admitted {
		c.JSON(http.StatusForbidden, gin.H{"msg": outcome.Reason})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  outcome.Tokens.AccessToken,
		"refresh_token": outcome.Tokens.RefreshToken,
		"admin": gin.H{
			"id":    outcome.Admin.ID,
			"name":  outcome.Admin.Name,
			"email": outcome.Admin.Email,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	adminIDAny, exists := c.Get(middleware.ContextAdminIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	if err := h.svc.Logout(adminIDAny.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// TokenRefresh 利用refresh来更新access
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	tokens, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": tokens.AccessToken, "refresh_token": tokens.RefreshToken})
}
