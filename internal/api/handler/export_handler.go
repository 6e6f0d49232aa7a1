package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ckstn0777/timetable-builder/internal/dto"
	"github.com/ckstn0777/timetable-builder/internal/service"
	"github.com/ckstn0777/timetable-builder/pkg/response"
)

const (
	mimeJSON = "application/json"
	mimeICS  = "text/calendar"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 文件导入/导出 Handler
type ExportHandler struct {
	svc    service.TimetableService
	export service.ExportService
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(svc service.TimetableService, export service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc, export: export}
}

// ExportFile 导出 JSON 文件（触发下载）
// GET /api/v1/export/file
func (h *ExportHandler) ExportFile(c *gin.Context) {
	raw, filename, err := h.export.ExportJSON(h.svc.Snapshot())
	if err != nil {
		response.InternalError(c)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, mimeJSON, raw)
}

// ExportICS 导出 iCalendar 文件
// GET /api/v1/export/ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	buf, filename, err := h.export.ExportICS(h.svc.View())
	if err != nil {
		response.InternalError(c)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, mimeICS, buf.Bytes())
}

// ExportXLSX 导出周网格 Excel 文件
// GET /api/v1/export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	buf, filename, err := h.export.ExportXLSX(h.svc.View())
	if err != nil {
		response.InternalError(c)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, mimeXLSX, buf.Bytes())
}

// ImportFile 从上传的 JSON 文件导入
// POST /api/v1/import/file (multipart/form-data, field="file")
func (h *ExportHandler) ImportFile(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 14000, "请上传 JSON 文件")
		return
	}
	defer file.Close()

	data, err := h.export.ImportJSON(file)
	if err != nil {
		handleImportError(c, err)
		return
	}

	h.svc.Import(data)
	response.OK(c, dto.ImportResponse{
		Courses:          len(data.Courses),
		ScheduledCourses: len(data.ScheduledCourses),
	})
}

// attachment 设置下载响应头
func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}
