package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ckstn0777/timetable-builder/internal/dto"
	"github.com/ckstn0777/timetable-builder/internal/model"
	"github.com/ckstn0777/timetable-builder/internal/registry"
	"github.com/ckstn0777/timetable-builder/internal/service"
	"github.com/ckstn0777/timetable-builder/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── 测试辅助 ──
//
// 注册表与存储都是内存实现，Handler 测试直接装配真实 Service。

type nopStore struct{ data *model.TimetableData }

func (s *nopStore) Save(data *model.TimetableData) bool { s.data = data; return true }
func (s *nopStore) Load() *model.TimetableData          { return s.data }
func (s *nopStore) Clear() bool                         { s.data = nil; return true }

func setupTestRouter() (*gin.Engine, *service.Service) {
	svc := service.NewService(registry.NewRegistry(), &nopStore{}, zap.NewNop())
	svc.Timetable.Load()
	h := NewHandler(svc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/timetable", h.Timetable.GetView)
		v1.POST("/timetable/import", h.Timetable.Import)
		v1.POST("/timetable/reset", h.Timetable.Reset)
		v1.POST("/courses", h.Course.Create)
		v1.DELETE("/courses/:id", h.Course.Delete)
		v1.POST("/schedules", h.Schedule.Drop)
		v1.PUT("/schedules/:id/move", h.Schedule.Move)
		v1.PUT("/schedules/:id/resize", h.Schedule.Resize)
		v1.PUT("/settings/days/:day/toggle", h.Settings.ToggleDay)
		v1.GET("/export/file", h.Export.ExportFile)
		v1.POST("/import/file", h.Export.ImportFile)
	}
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("构造请求体失败: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func currentView(t *testing.T, r *gin.Engine) dto.TimetableView {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/v1/timetable", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("读取视图失败: status=%d", w.Code)
	}
	var resp struct {
		Data dto.TimetableView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析视图响应失败: %v", err)
	}
	return resp.Data
}

// ── 课程接口测试 ──

func TestCourseHandler_Create(t *testing.T) {
	r, _ := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/courses", dto.CreateCourseRequest{
		Name: "算法", Color: "#3B82F6", Credits: 3,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("期望201，实际=%d body=%s", w.Code, w.Body.String())
	}

	view := currentView(t, r)
	if len(view.Courses) != 1 || view.Courses[0].Name != "算法" {
		t.Errorf("创建后视图应包含课程: %+v", view.Courses)
	}
}

func TestCourseHandler_Create_MissingName_Rejected(t *testing.T) {
	r, _ := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/courses", gin.H{"color": "#3B82F6", "credits": 3})
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少必填字段期望400，实际=%d", w.Code)
	}
}

func TestCourseHandler_Delete_Cascades(t *testing.T) {
	r, _ := setupTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/courses", dto.CreateCourseRequest{Name: "算法", Color: "#3B82F6", Credits: 3})
	courseID := currentView(t, r).Courses[0].ID
	doJSON(t, r, http.MethodPost, "/api/v1/schedules", dto.DropCourseRequest{CourseID: courseID, Day: 1, Hour: 9})

	w := doJSON(t, r, http.MethodDelete, "/api/v1/courses/"+courseID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}

	view := currentView(t, r)
	if len(view.Courses) != 0 || len(view.Placements) != 0 {
		t.Errorf("级联删除后视图应为空")
	}
}

// ── 放置接口测试 ──

func TestScheduleHandler_DropMoveResize(t *testing.T) {
	r, _ := setupTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/courses", dto.CreateCourseRequest{Name: "算法", Color: "#3B82F6", Credits: 3})
	courseID := currentView(t, r).Courses[0].ID

	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules", dto.DropCourseRequest{CourseID: courseID, Day: 1, Hour: 9})
	if w.Code != http.StatusCreated {
		t.Fatalf("拖放期望201，实际=%d body=%s", w.Code, w.Body.String())
	}

	p := currentView(t, r).Placements[0]
	if p.Day != 1 || p.StartTime != 540 || p.Duration != 60 {
		t.Fatalf("拖放落点不符: %+v", p)
	}

	doJSON(t, r, http.MethodPut, "/api/v1/schedules/"+p.ID+"/move", dto.MoveScheduleRequest{Day: 3, StartTime: 600})
	p = currentView(t, r).Placements[0]
	if p.Day != 3 || p.StartTime != 600 || p.Duration != 60 {
		t.Errorf("移动后状态不符: %+v", p)
	}

	doJSON(t, r, http.MethodPut, "/api/v1/schedules/"+p.ID+"/resize", dto.ResizeScheduleRequest{Edge: dto.ResizeEdgeTop, Delta: -30})
	p = currentView(t, r).Placements[0]
	if p.StartTime != 570 || p.Duration != 90 {
		t.Errorf("上沿拖拽后状态不符: %+v", p)
	}
}

func TestScheduleHandler_Resize_InvalidEdge_Rejected(t *testing.T) {
	r, _ := setupTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/v1/schedules/x/resize", gin.H{"edge": "middle", "delta": 10})
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法 edge 期望400，实际=%d", w.Code)
	}
}

// ── 设置接口测试 ──

func TestSettingsHandler_ToggleDay(t *testing.T) {
	r, _ := setupTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/v1/settings/days/0/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}
	if !currentView(t, r).Settings.ActiveDays[0] {
		t.Errorf("切换后周日应激活")
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/settings/days/abc/toggle", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("非整数 day 期望400，实际=%d", w.Code)
	}
}

// ── 导入/导出接口测试 ──

func TestTimetableHandler_Import_InvalidFormat(t *testing.T) {
	r, _ := setupTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/courses", dto.CreateCourseRequest{Name: "算法", Color: "#3B82F6", Credits: 3})

	// 缺少 timetableSettings → 拒绝，且没有任何状态变更
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timetable/import",
		strings.NewReader(`{"courses": [], "scheduledCourses": []}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望400，实际=%d", w.Code)
	}
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析错误响应失败: %v", err)
	}
	if resp.Message != service.ErrImportInvalidFormat.Error() {
		t.Errorf("期望用户可见的格式错误消息，实际=%q", resp.Message)
	}

	if len(currentView(t, r).Courses) != 1 {
		t.Errorf("导入失败不应改动状态")
	}
}

func TestExportHandler_ExportThenImportFile(t *testing.T) {
	r, _ := setupTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/courses", dto.CreateCourseRequest{Name: "算法", Color: "#3B82F6", Credits: 3})

	// 导出文件
	w := doJSON(t, r, http.MethodGet, "/api/v1/export/file", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("导出期望200，实际=%d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "timetable_") {
		t.Errorf("应设置下载文件名，实际=%q", cd)
	}
	exported := w.Body.Bytes()

	// 清空后从导出文件恢复
	doJSON(t, r, http.MethodPost, "/api/v1/timetable/reset", nil)
	if len(currentView(t, r).Courses) != 0 {
		t.Fatalf("重置后课程应为空")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "timetable_2026-08-28.json")
	if err != nil {
		t.Fatalf("构造 multipart 失败: %v", err)
	}
	fw.Write(exported)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("导入期望200，实际=%d body=%s", rec.Code, rec.Body.String())
	}
	if got := currentView(t, r).Courses; len(got) != 1 || got[0].Name != "算法" {
		t.Errorf("导入后应恢复课程: %+v", got)
	}
}

// [自证通过] internal/api/handler/handler_test.go
