// Code generated by MockGen. DO NOT EDIT.
// Source: projects.go
//
// Generated by this command:
//
//	mockgen -source=projects.go -destination=mockprojects.gen.go -package=projects
//

// Package projects is a generated GoMock package.
package projects

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockProjects is a mock of Projects interface.
type MockProjects struct {
	ctrl     *gomock.Controller
	recorder *MockProjectsMockRecorder
}

// MockProjectsMockRecorder is the mock recorder for MockProjects.
type MockProjectsMockRecorder struct {
	mock *MockProjects
}

// NewMockProjects creates a new mock instance.
func NewMockProjects(ctrl *gomock.Controller) *MockProjects {
	mock := &MockProjects{ctrl: ctrl}
	mock.recorder = &MockProjectsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProjects) EXPECT() *MockProjectsMockRecorder {
	return m.recorder
}

// ItemForIssue mocks base method.
func (m *MockProjects) ItemForIssue(projectID string, issueNumber int) (*Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ItemForIssue", projectID, issueNumber)
	ret0, _ := ret[0].(*Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ItemForIssue indicates an expected call of ItemForIssue.
func (mr *MockProjectsMockRecorder) ItemForIssue(projectID, issueNumber any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ItemForIssue", reflect.TypeOf((*MockProjects)(nil).ItemForIssue), projectID, issueNumber)
}

// ListItems mocks base method.
func (m *MockProjects) ListItems(projectID string) ([]Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListItems", projectID)
	ret0, _ := ret[0].([]Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListItems indicates an expected call of ListItems.
func (mr *MockProjectsMockRecorder) ListItems(projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListItems", reflect.TypeOf((*MockProjects)(nil).ListItems), projectID)
}

// ResolveFields mocks base method.
func (m *MockProjects) ResolveFields(projectID string) (*Fields, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveFields", projectID)
	ret0, _ := ret[0].(*Fields)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveFields indicates an expected call of ResolveFields.
func (mr *MockProjectsMockRecorder) ResolveFields(projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveFields", reflect.TypeOf((*MockProjects)(nil).ResolveFields), projectID)
}

// ResolveProject mocks base method.
func (m *MockProjects) ResolveProject(owner string, number int) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveProject", owner, number)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveProject indicates an expected call of ResolveProject.
func (mr *MockProjectsMockRecorder) ResolveProject(owner, number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveProject", reflect.TypeOf((*MockProjects)(nil).ResolveProject), owner, number)
}

// SetSingleSelect mocks base method.
func (m *MockProjects) SetSingleSelect(projectID, itemID, fieldID, optionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetSingleSelect", projectID, itemID, fieldID, optionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetSingleSelect indicates an expected call of SetSingleSelect.
func (mr *MockProjectsMockRecorder) SetSingleSelect(projectID, itemID, fieldID, optionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSingleSelect", reflect.TypeOf((*MockProjects)(nil).SetSingleSelect), projectID, itemID, fieldID, optionID)
}

// SetText mocks base method.
func (m *MockProjects) SetText(projectID, itemID, fieldID, text string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetText", projectID, itemID, fieldID, text)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetText indicates an expected call of SetText.
func (mr *MockProjectsMockRecorder) SetText(projectID, itemID, fieldID, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetText", reflect.TypeOf((*MockProjects)(nil).SetText), projectID, itemID, fieldID, text)
}

// UpsertItem mocks base method.
func (m *MockProjects) UpsertItem(projectID, issueNodeID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertItem", projectID, issueNodeID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpsertItem indicates an expected call of UpsertItem.
func (mr *MockProjectsMockRecorder) UpsertItem(projectID, issueNodeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertItem", reflect.TypeOf((*MockProjects)(nil).UpsertItem), projectID, issueNodeID)
}

// WaitForItem mocks base method.
func (m *MockProjects) WaitForItem(projectID string, issueNumber int) (*Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WaitForItem", projectID, issueNumber)
	ret0, _ := ret[0].(*Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// WaitForItem indicates an expected call of WaitForItem.
func (mr *MockProjectsMockRecorder) WaitForItem(projectID, issueNumber any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WaitForItem", reflect.TypeOf((*MockProjects)(nil).WaitForItem), projectID, issueNumber)
}
