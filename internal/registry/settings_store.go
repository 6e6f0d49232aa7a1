package registry

import "github.com/ckstn0777/timetable-builder/internal/model"

// SettingsStore 可视时间窗配置存储
//
// Update 做浅合并，不做跨字段校验（允许 startHour == endHour，
// 其回绕语义见 model.TimetableSettings.TotalHours）。
// ToggleDay 是整个设置面中唯一被校验的不变量：
// 不允许关闭最后一个激活日，违反时静默 no-op。
type SettingsStore interface {
	// Get 返回当前设置副本
	Get() model.TimetableSettings
	// Update 浅合并部分修改
	Update(patch model.SettingsPatch)
	// ToggleDay 翻转某天的激活状态；若会清空最后一个激活日则拒绝（状态不变）
	ToggleDay(day int)
	// Reset 恢复硬编码默认值
	Reset()
	// ReplaceAll 整体替换（导入用）
	ReplaceAll(settings model.TimetableSettings)
}

type settingsStore struct {
	settings model.TimetableSettings
}

// NewSettingsStore 创建 SettingsStore 实例（初始为默认设置）
func NewSettingsStore() SettingsStore {
	return &settingsStore{settings: model.DefaultSettings()}
}

func (s *settingsStore) Get() model.TimetableSettings {
	return s.settings
}

func (s *settingsStore) Update(patch model.SettingsPatch) {
	if patch.StartHour != nil {
		s.settings.StartHour = *patch.StartHour
	}
	if patch.EndHour != nil {
		s.settings.EndHour = *patch.EndHour
	}
	if patch.ActiveDays != nil {
		s.settings.ActiveDays = *patch.ActiveDays
	}
}

func (s *settingsStore) ToggleDay(day int) {
	if day < 0 || day >= model.DaysPerWeek {
		return
	}
	// 关闭当前唯一的激活日会留下空网格，拒绝该变更
	if s.settings.ActiveDays[day] && s.settings.ActiveDayCount() == 1 {
		return
	}
	s.settings.ActiveDays[day] = !s.settings.ActiveDays[day]
}

func (s *settingsStore) Reset() {
	s.settings = model.DefaultSettings()
}

func (s *settingsStore) ReplaceAll(settings model.TimetableSettings) {
	s.settings = settings
}
