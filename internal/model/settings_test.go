package model

import "testing"

// ── 可视窗口跨度计算测试 ──

func TestTimetableSettings_TotalHours(t *testing.T) {
	tests := []struct {
		name      string
		startHour int
		endHour   int
		want      int
	}{
		{"默认窗口 6-22", 6, 22, 16},
		{"整天 0-24", 0, 24, 24},
		{"跨午夜 22-6", 22, 6, 8},
		{"相等读作全天（沿袭原始行为）", 10, 10, 24},
		{"单小时 9-10", 9, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TimetableSettings{StartHour: tt.startHour, EndHour: tt.endHour}
			if got := s.TotalHours(); got != tt.want {
				t.Errorf("TotalHours(%d,%d)=%d，期望=%d", tt.startHour, tt.endHour, got, tt.want)
			}
		})
	}
}

func TestTimetableSettings_ActiveDayIndexes(t *testing.T) {
	s := DefaultSettings()

	days := s.ActiveDayIndexes()
	want := []int{1, 2, 3, 4, 5}
	if len(days) != len(want) {
		t.Fatalf("期望%d个激活日，实际=%d", len(want), len(days))
	}
	for i, d := range want {
		if days[i] != d {
			t.Errorf("激活日顺序不符: %v", days)
			break
		}
	}
	if s.ActiveDayCount() != 5 {
		t.Errorf("期望ActiveDayCount=5，实际=%d", s.ActiveDayCount())
	}
}
