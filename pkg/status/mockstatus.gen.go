// Code generated by MockGen. DO NOT EDIT.
// Source: status.go
//
// Generated by this command:
//
//	mockgen -source=status.go -destination=mockstatus.gen.go -package=status
//

// Package status is a generated GoMock package.
package status

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockManager is a mock of Manager interface.
type MockManager struct {
	ctrl     *gomock.Controller
	recorder *MockManagerMockRecorder
}

// MockManagerMockRecorder is the mock recorder for MockManager.
type MockManagerMockRecorder struct {
	mock *MockManager
}

// NewMockManager creates a new mock instance.
func NewMockManager(ctrl *gomock.Controller) *MockManager {
	mock := &MockManager{ctrl: ctrl}
	mock.recorder = &MockManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockManager) EXPECT() *MockManagerMockRecorder {
	return m.recorder
}

// GetIdea mocks base method.
func (m *MockManager) GetIdea(id string) (*Record, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdea", id)
	ret0, _ := ret[0].(*Record)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdea indicates an expected call of GetIdea.
func (mr *MockManagerMockRecorder) GetIdea(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdea", reflect.TypeOf((*MockManager)(nil).GetIdea), id)
}

// ListIdeas mocks base method.
func (m *MockManager) ListIdeas() ([]Record, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListIdeas")
	ret0, _ := ret[0].([]Record)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListIdeas indicates an expected call of ListIdeas.
func (mr *MockManagerMockRecorder) ListIdeas() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListIdeas", reflect.TypeOf((*MockManager)(nil).ListIdeas))
}

// RemoveIdea mocks base method.
func (m *MockManager) RemoveIdea(id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveIdea", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveIdea indicates an expected call of RemoveIdea.
func (mr *MockManagerMockRecorder) RemoveIdea(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveIdea", reflect.TypeOf((*MockManager)(nil).RemoveIdea), id)
}

// UpsertIdea mocks base method.
func (m *MockManager) UpsertIdea(record Record) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertIdea", record)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertIdea indicates an expected call of UpsertIdea.
func (mr *MockManagerMockRecorder) UpsertIdea(record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertIdea", reflect.TypeOf((*MockManager)(nil).UpsertIdea), record)
}
