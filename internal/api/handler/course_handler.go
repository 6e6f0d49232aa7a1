package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ckstn0777/timetable-builder/internal/dto"
	"github.com/ckstn0777/timetable-builder/internal/service"
	"github.com/ckstn0777/timetable-builder/pkg/response"
)

// CourseHandler 课程模块 Handler
type CourseHandler struct {
	svc service.TimetableService
}

// NewCourseHandler 创建 CourseHandler 实例
func NewCourseHandler(svc service.TimetableService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// Create 新增课程
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11000, err.Error())
		return
	}

	h.svc.AddCourse(req.Name, req.Color, req.Credits)
	response.Created(c, nil)
}

// Delete 删除课程（级联删除其全部放置）
// DELETE /api/v1/courses/:id
//
// 不存在的 id 是 no-op 而非错误，始终返回成功。
func (h *CourseHandler) Delete(c *gin.Context) {
	h.svc.DeleteCourse(c.Param("id"))
	response.OK(c, nil)
}
