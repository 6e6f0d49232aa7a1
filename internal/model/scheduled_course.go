package model

// ── 放置规则常量 ──

const (
	// MinDuration 放置的最短时长（分钟）
	MinDuration = 10
	// DefaultDuration 拖放创建时的默认时长（分钟）
	DefaultDuration = 60
	// SnapStep 拖拽调整的吸附步长（分钟）
	SnapStep = 10
)

// ScheduledCourse 课程放置 — 某课程在周网格中占据的一个时间块
//
// courseId 是弱引用：不在写入时做引用完整性校验，
// 悬空引用在读取/渲染时被过滤，而非拒绝。
// startTime + duration 允许超过 1440（无跨午夜回绕处理）。
// 允许多个放置共享同一 day/时间区间（无冲突检测）。
type ScheduledCourse struct {
	ID        string `json:"id"`
	CourseID  string `json:"courseId"`
	Day       int    `json:"day"`       // 0=周日 … 6=周六
	StartTime int    `json:"startTime"` // 自午夜起的分钟数，0-1439
	Duration  int    `json:"duration"`  // 分钟，最小 10
}

// SchedulePatch 放置的部分更新（nil 字段表示不修改）
type SchedulePatch struct {
	Day       *int
	StartTime *int
	Duration  *int
}
