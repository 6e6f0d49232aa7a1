package dto

// ── 设置模块 DTO ──

// UpdateSettingsRequest 设置部分更新请求
//
// 不做跨字段校验（允许 startHour == endHour，读作全天窗口）。
type UpdateSettingsRequest struct {
	StartHour  *int     `json:"startHour"  binding:"omitempty,min=0,max=23"`
	EndHour    *int     `json:"endHour"    binding:"omitempty,min=1,max=24"`
	ActiveDays *[7]bool `json:"activeDays"`
}
