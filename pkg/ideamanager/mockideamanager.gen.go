// Code generated by MockGen. DO NOT EDIT.
// Source: idea_manager.go
//
// Generated by this command:
//
//	mockgen -source=idea_manager.go -destination=mockideamanager.gen.go -package=ideamanager
//

// Package ideamanager is a generated GoMock package.
package ideamanager

import (
	reflect "reflect"

	guardrails "github.com/mgoudin/idea-manager/pkg/guardrails"
	idea "github.com/mgoudin/idea-manager/pkg/idea"
	logger "github.com/mgoudin/idea-manager/pkg/logger"
	reconcile "github.com/mgoudin/idea-manager/pkg/reconcile"
	gomock "go.uber.org/mock/gomock"
)

// MockIdeaManager is a mock of IdeaManager interface.
type MockIdeaManager struct {
	ctrl     *gomock.Controller
	recorder *MockIdeaManagerMockRecorder
}

// MockIdeaManagerMockRecorder is the mock recorder for MockIdeaManager.
type MockIdeaManagerMockRecorder struct {
	mock *MockIdeaManager
}

// NewMockIdeaManager creates a new mock instance.
func NewMockIdeaManager(ctrl *gomock.Controller) *MockIdeaManager {
	mock := &MockIdeaManager{ctrl: ctrl}
	mock.recorder = &MockIdeaManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdeaManager) EXPECT() *MockIdeaManagerMockRecorder {
	return m.recorder
}

// Archive mocks base method.
func (m *MockIdeaManager) Archive(id string, force bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Archive", id, force)
	ret0, _ := ret[0].(error)
	return ret0
}

// Archive indicates an expected call of Archive.
func (mr *MockIdeaManagerMockRecorder) Archive(id, force any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Archive", reflect.TypeOf((*MockIdeaManager)(nil).Archive), id, force)
}

// Check mocks base method.
func (m *MockIdeaManager) Check(names []string) ([]guardrails.Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check", names)
	ret0, _ := ret[0].([]guardrails.Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockIdeaManagerMockRecorder) Check(names any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockIdeaManager)(nil).Check), names)
}

// CreateBranch mocks base method.
func (m *MockIdeaManager) CreateBranch(id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBranch", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBranch indicates an expected call of CreateBranch.
func (mr *MockIdeaManagerMockRecorder) CreateBranch(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBranch", reflect.TypeOf((*MockIdeaManager)(nil).CreateBranch), id)
}

// CreateIdea mocks base method.
func (m *MockIdeaManager) CreateIdea(params CreateIdeaParams) (*idea.Idea, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIdea", params)
	ret0, _ := ret[0].(*idea.Idea)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIdea indicates an expected call of CreateIdea.
func (mr *MockIdeaManagerMockRecorder) CreateIdea(params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIdea", reflect.TypeOf((*MockIdeaManager)(nil).CreateIdea), params)
}

// Init mocks base method.
func (m *MockIdeaManager) Init(opts InitOpts) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Init", opts)
	ret0, _ := ret[0].(error)
	return ret0
}

// Init indicates an expected call of Init.
func (mr *MockIdeaManagerMockRecorder) Init(opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Init", reflect.TypeOf((*MockIdeaManager)(nil).Init), opts)
}

// ListIdeas mocks base method.
func (m *MockIdeaManager) ListIdeas(opts ...ListIdeasOpts) ([]IdeaInfo, error) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ListIdeas", varargs...)
	ret0, _ := ret[0].([]IdeaInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListIdeas indicates an expected call of ListIdeas.
func (mr *MockIdeaManagerMockRecorder) ListIdeas(opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListIdeas", reflect.TypeOf((*MockIdeaManager)(nil).ListIdeas), opts...)
}

// MergeChangelog mocks base method.
func (m *MockIdeaManager) MergeChangelog(fragmentPath string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MergeChangelog", fragmentPath)
	ret0, _ := ret[0].(error)
	return ret0
}

// MergeChangelog indicates an expected call of MergeChangelog.
func (mr *MockIdeaManagerMockRecorder) MergeChangelog(fragmentPath any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MergeChangelog", reflect.TypeOf((*MockIdeaManager)(nil).MergeChangelog), fragmentPath)
}

// OpenPR mocks base method.
func (m *MockIdeaManager) OpenPR(id string, opts ...OpenPROpts) error {
	m.ctrl.T.Helper()
	varargs := []any{id}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "OpenPR", varargs...)
	ret0, _ := ret[0].(error)
	return ret0
}

// OpenPR indicates an expected call of OpenPR.
func (mr *MockIdeaManagerMockRecorder) OpenPR(id any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{id}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenPR", reflect.TypeOf((*MockIdeaManager)(nil).OpenPR), varargs...)
}

// Reconcile mocks base method.
func (m *MockIdeaManager) Reconcile(apply bool) (*reconcile.Plan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reconcile", apply)
	ret0, _ := ret[0].(*reconcile.Plan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reconcile indicates an expected call of Reconcile.
func (mr *MockIdeaManagerMockRecorder) Reconcile(apply any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reconcile", reflect.TypeOf((*MockIdeaManager)(nil).Reconcile), apply)
}

// SetLogger mocks base method.
func (m *MockIdeaManager) SetLogger(logger logger.Logger) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetLogger", logger)
}

// SetLogger indicates an expected call of SetLogger.
func (mr *MockIdeaManagerMockRecorder) SetLogger(logger any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLogger", reflect.TypeOf((*MockIdeaManager)(nil).SetLogger), logger)
}

// Ticket mocks base method.
func (m *MockIdeaManager) Ticket(id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ticket", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Ticket indicates an expected call of Ticket.
func (mr *MockIdeaManagerMockRecorder) Ticket(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ticket", reflect.TypeOf((*MockIdeaManager)(nil).Ticket), id)
}
