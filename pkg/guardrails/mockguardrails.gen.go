// Code generated by MockGen. DO NOT EDIT.
// Source: guardrails.go
//
// Generated by this command:
//
//	mockgen -source=guardrails.go -destination=mockguardrails.gen.go -package=guardrails
//

// Package guardrails is a generated GoMock package.
package guardrails

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockCheck is a mock of Check interface.
type MockCheck struct {
	ctrl     *gomock.Controller
	recorder *MockCheckMockRecorder
}

// MockCheckMockRecorder is the mock recorder for MockCheck.
type MockCheckMockRecorder struct {
	mock *MockCheck
}

// NewMockCheck creates a new mock instance.
func NewMockCheck(ctrl *gomock.Controller) *MockCheck {
	mock := &MockCheck{ctrl: ctrl}
	mock.recorder = &MockCheckMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCheck) EXPECT() *MockCheckMockRecorder {
	return m.recorder
}

// Name mocks base method.
func (m *MockCheck) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockCheckMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockCheck)(nil).Name))
}

// Run mocks base method.
func (m *MockCheck) Run(ctx context.Context, repoPath string) (Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx, repoPath)
	ret0, _ := ret[0].(Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Run indicates an expected call of Run.
func (mr *MockCheckMockRecorder) Run(ctx, repoPath any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockCheck)(nil).Run), ctx, repoPath)
}

// MockRunner is a mock of Runner interface.
type MockRunner struct {
	ctrl     *gomock.Controller
	recorder *MockRunnerMockRecorder
}

// MockRunnerMockRecorder is the mock recorder for MockRunner.
type MockRunnerMockRecorder struct {
	mock *MockRunner
}

// NewMockRunner creates a new mock instance.
func NewMockRunner(ctrl *gomock.Controller) *MockRunner {
	mock := &MockRunner{ctrl: ctrl}
	mock.recorder = &MockRunnerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRunner) EXPECT() *MockRunnerMockRecorder {
	return m.recorder
}

// Checks mocks base method.
func (m *MockRunner) Checks() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Checks")
	ret0, _ := ret[0].([]string)
	return ret0
}

// Checks indicates an expected call of Checks.
func (mr *MockRunnerMockRecorder) Checks() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Checks", reflect.TypeOf((*MockRunner)(nil).Checks))
}

// Run mocks base method.
func (m *MockRunner) Run(ctx context.Context, repoPath string, names []string) ([]Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx, repoPath, names)
	ret0, _ := ret[0].([]Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Run indicates an expected call of Run.
func (mr *MockRunnerMockRecorder) Run(ctx, repoPath, names any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockRunner)(nil).Run), ctx, repoPath, names)
}
