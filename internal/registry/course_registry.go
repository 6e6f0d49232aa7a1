package registry

import (
	"github.com/google/uuid"

	"github.com/ckstn0777/timetable-builder/internal/model"
)

// CourseRegistry 课程定义注册表
//
// 所有操作均为全函数：不存在的 id 静默忽略，Add 不做任何校验
// （非空名称等约束由调用方/HTTP 绑定层保证）。
type CourseRegistry interface {
	// Add 追加一条课程定义，分配新 id
	Add(name, color string, credits int)
	// Delete 删除匹配 id 的课程；不存在时为 no-op
	Delete(id string)
	// ReplaceAll 整体替换（导入/重置用）
	ReplaceAll(courses []model.Course)
	// List 按追加顺序返回快照副本
	List() []model.Course
	// Get 按 id 查找
	Get(id string) (model.Course, bool)
}

type courseRegistry struct {
	courses []model.Course
}

// NewCourseRegistry 创建 CourseRegistry 实例
func NewCourseRegistry() CourseRegistry {
	return &courseRegistry{courses: []model.Course{}}
}

func (r *courseRegistry) Add(name, color string, credits int) {
	r.courses = append(r.courses, model.Course{
		ID:      uuid.New().String(),
		Name:    name,
		Color:   color,
		Credits: credits,
	})
}

func (r *courseRegistry) Delete(id string) {
	kept := r.courses[:0]
	for _, c := range r.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.courses = kept
}

func (r *courseRegistry) ReplaceAll(courses []model.Course) {
	r.courses = make([]model.Course, len(courses))
	copy(r.courses, courses)
}

func (r *courseRegistry) List() []model.Course {
	out := make([]model.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

func (r *courseRegistry) Get(id string) (model.Course, bool) {
	for _, c := range r.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}
