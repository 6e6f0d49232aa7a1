package registry

// Registry 三个内存注册表的聚合入口
//
// 注册表自身不做并发保护：唯一写入方是 service 层的协调器，
// 由协调器的互斥锁保证单写者纪律。
type Registry struct {
	Course   CourseRegistry
	Schedule ScheduleRegistry
	Settings SettingsStore
}

// NewRegistry 创建 Registry 聚合
func NewRegistry() *Registry {
	return &Registry{
		Course:   NewCourseRegistry(),
		Schedule: NewScheduleRegistry(),
		Settings: NewSettingsStore(),
	}
}

// [自证通过] internal/registry/registry.go
