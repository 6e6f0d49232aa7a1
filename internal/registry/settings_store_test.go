package registry

import (
	"testing"

	"github.com/ckstn0777/timetable-builder/internal/model"
)

// ── SettingsStore 测试 ──

func TestSettingsStore_Default(t *testing.T) {
	s := NewSettingsStore()

	settings := s.Get()
	if settings.StartHour != 6 || settings.EndHour != 22 {
		t.Errorf("默认窗口应为 06:00-22:00，实际: %+v", settings)
	}
	want := [7]bool{false, true, true, true, true, true, false}
	if settings.ActiveDays != want {
		t.Errorf("默认激活日应为周一至周五，实际: %v", settings.ActiveDays)
	}
}

func TestSettingsStore_Update_PartialMerge(t *testing.T) {
	s := NewSettingsStore()

	newStart := 8
	s.Update(model.SettingsPatch{StartHour: &newStart})

	settings := s.Get()
	if settings.StartHour != 8 {
		t.Errorf("期望startHour=8，实际=%d", settings.StartHour)
	}
	// 未指定的字段保持原值
	if settings.EndHour != 22 {
		t.Errorf("部分更新不应影响 endHour，实际=%d", settings.EndHour)
	}
}

func TestSettingsStore_Update_NoCrossFieldValidation(t *testing.T) {
	s := NewSettingsStore()

	// startHour == endHour 不被阻止（回绕语义读作全天窗口）
	h := 10
	s.Update(model.SettingsPatch{StartHour: &h, EndHour: &h})

	settings := s.Get()
	if settings.StartHour != 10 || settings.EndHour != 10 {
		t.Errorf("startHour == endHour 应被接受: %+v", settings)
	}
	if settings.TotalHours() != 24 {
		t.Errorf("相等窗口按回绕公式应为24小时，实际=%d", settings.TotalHours())
	}
}

func TestSettingsStore_ToggleDay_Flips(t *testing.T) {
	s := NewSettingsStore()

	s.ToggleDay(0) // 周日 false → true

	settings := s.Get()
	if !settings.ActiveDays[0] {
		t.Errorf("切换应翻转目标日")
	}
	// 仅翻转目标下标
	want := [7]bool{true, true, true, true, true, true, false}
	if settings.ActiveDays != want {
		t.Errorf("切换不应影响其他日: %v", settings.ActiveDays)
	}
}

func TestSettingsStore_ToggleDay_LastActive_Rejected(t *testing.T) {
	s := NewSettingsStore()
	s.ReplaceAll(model.TimetableSettings{
		StartHour:  6,
		EndHour:    22,
		ActiveDays: [7]bool{false, true, false, false, false, false, false},
	})

	s.ToggleDay(1) // 唯一激活日

	if !s.Get().ActiveDays[1] {
		t.Errorf("关闭最后一个激活日应被拒绝（状态不变）")
	}
}

func TestSettingsStore_ToggleDay_OutOfRange_NoOp(t *testing.T) {
	s := NewSettingsStore()
	before := s.Get()

	s.ToggleDay(-1)
	s.ToggleDay(7)

	if s.Get() != before {
		t.Errorf("越界下标应为 no-op")
	}
}

func TestSettingsStore_Reset(t *testing.T) {
	s := NewSettingsStore()
	h := 1
	s.Update(model.SettingsPatch{StartHour: &h})

	s.Reset()

	if s.Get() != model.DefaultSettings() {
		t.Errorf("Reset 应恢复硬编码默认值: %+v", s.Get())
	}
}
