package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
//
// 非空名称等约束在此 HTTP 绑定层收口；注册表本身不做校验。
type CreateCourseRequest struct {
	Name    string `json:"name"    binding:"required,min=1,max=100"`
	Color   string `json:"color"   binding:"required"`
	Credits int    `json:"credits" binding:"required,min=1"`
}
