package service

import "github.com/ckstn0777/timetable-builder/internal/model"

// ── Mock SnapshotStore ──

type mockStore struct {
	data      *model.TimetableData
	saveCount int
	failSave  bool
}

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) Save(data *model.TimetableData) bool {
	m.saveCount++
	if m.failSave {
		return false
	}
	m.data = data
	return true
}

func (m *mockStore) Load() *model.TimetableData {
	return m.data
}

func (m *mockStore) Clear() bool {
	m.data = nil
	return true
}
