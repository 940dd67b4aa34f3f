package router

import (
	"Event_Admin/internal/config"
	"Event_Admin/internal/handler"
	"Event_Admin/internal/middleware"
	"Event_Admin/internal/pkg"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 警告邮件走 SMTP；没配 host 则关掉
	var sendMail func(to, reason string) error
	if cfg.SMTP.Host != "" {
		smtpCfg := pkg.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}
		sendMail = func(to, reason string) error {
			return pkg.SendEmail(smtpCfg, to, "Warning: Content Violation", pkg.WarningHTML(reason))
		}
	}

	auth := handler.NewAuthHandler()
	stats := handler.NewStatsHandler()
	users := handler.NewUserHandler(cfg.UsersPerPage, cfg.BanDays)
	events := handler.NewEventHandler(cfg.EventsPerPage)
	reports := handler.NewReportHandler(cfg.ReportsPerPage, cfg.BanDays, sendMail)

	// 登录相关接口
	authGroup := r.Group("/api/admin")
	{
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/token/refresh", auth.TokenRefresh)
	}

	// 管理台接口，全部要求 admin 会话
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware())
	{
		adminGroup.POST("/logout", auth.Logout)
		adminGroup.GET("/stats", stats.Overview)

		adminGroup.GET("/users", users.List)
		adminGroup.PUT("/users/:id", users.Update)
		adminGroup.PUT("/users/:id/status", users.SetStatus)

		adminGroup.GET("/events", events.List)
		adminGroup.DELETE("/events/:id", events.Delete)

		adminGroup.GET("/reports", reports.List)
		adminGroup.POST("/reports/:id/resolve", reports.Resolve)
	}

	return r
}
