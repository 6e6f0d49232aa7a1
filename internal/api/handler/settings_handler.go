package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ckstn0777/timetable-builder/internal/dto"
	"github.com/ckstn0777/timetable-builder/internal/model"
	"github.com/ckstn0777/timetable-builder/internal/service"
	"github.com/ckstn0777/timetable-builder/pkg/response"
)

// SettingsHandler 设置模块 Handler
type SettingsHandler struct {
	svc service.TimetableService
}

// NewSettingsHandler 创建 SettingsHandler 实例
func NewSettingsHandler(svc service.TimetableService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Update 设置浅合并更新
// PUT /api/v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13000, err.Error())
		return
	}

	h.svc.UpdateSettings(model.SettingsPatch{
		StartHour:  req.StartHour,
		EndHour:    req.EndHour,
		ActiveDays: req.ActiveDays,
	})
	response.OK(c, nil)
}

// ToggleDay 翻转某天的激活状态
// PUT /api/v1/settings/days/:day/toggle
//
// 关闭最后一个激活日的请求在存储层被静默拒绝（仍返回成功），
// 调用方通过重新读取视图得知实际状态。
func (h *SettingsHandler) ToggleDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day >= model.DaysPerWeek {
		response.BadRequest(c, 13001, "day 必须是 0-6 的整数")
		return
	}

	h.svc.ToggleDay(day)
	response.OK(c, nil)
}

// Reset 恢复默认设置
// POST /api/v1/settings/reset
func (h *SettingsHandler) Reset(c *gin.Context) {
	h.svc.ResetSettings()
	response.OK(c, nil)
}
