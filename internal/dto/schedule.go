package dto

// ── 放置模块 DTO ──

// 拖拽调整的边沿
const (
	ResizeEdgeTop    = "top"
	ResizeEdgeBottom = "bottom"
)

// DropCourseRequest 拖放创建放置请求：拖放手势的 {courseId} 载荷 + 目标格 (day, hour)
type DropCourseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Day      int    `json:"day"      binding:"min=0,max=6"`
	Hour     int    `json:"hour"     binding:"min=0,max=23"`
}

// MoveScheduleRequest 移动放置请求（时长不变）
type MoveScheduleRequest struct {
	Day       int `json:"day"       binding:"min=0,max=6"`
	StartTime int `json:"startTime" binding:"min=0,max=1439"`
}

// ResizeScheduleRequest 拖拽调整请求
//
// delta 为手势层由像素换算出的分钟增量，协调器按 10 分钟步长吸附后应用。
type ResizeScheduleRequest struct {
	Edge  string `json:"edge"  binding:"required,oneof=top bottom"`
	Delta int    `json:"delta"`
}

// SelectScheduleRequest 选中放置请求（scheduleId 为空表示取消选中）
type SelectScheduleRequest struct {
	ScheduleID string `json:"scheduleId"`
}

// UpdateScheduleRequest 放置部分更新请求
type UpdateScheduleRequest struct {
	Day       *int `json:"day"       binding:"omitempty,min=0,max=6"`
	StartTime *int `json:"startTime" binding:"omitempty,min=0,max=1439"`
	Duration  *int `json:"duration"  binding:"omitempty,min=10"`
}
