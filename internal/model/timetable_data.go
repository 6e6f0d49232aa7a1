package model

import "time"

// CurrentVersion 信封格式版本号（语义化字符串，目前仅作前向兼容标记）
const CurrentVersion = "1.0.0"

// TimetableData 持久化/传输信封 — 本地存储与导出文件共用同一形状
type TimetableData struct {
	Courses           []Course          `json:"courses"`
	ScheduledCourses  []ScheduledCourse `json:"scheduledCourses"`
	TimetableSettings TimetableSettings `json:"timetableSettings"`
	Version           string            `json:"version"`
	LastSaved         string            `json:"lastSaved"` // ISO-8601，序列化时刷新
}

// NewTimetableData 组装信封并打上当前版本与时间戳
func NewTimetableData(courses []Course, scheduled []ScheduledCourse, settings TimetableSettings) *TimetableData {
	return &TimetableData{
		Courses:           courses,
		ScheduledCourses:  scheduled,
		TimetableSettings: settings,
		Version:           CurrentVersion,
		LastSaved:         time.Now().UTC().Format(time.RFC3339),
	}
}
