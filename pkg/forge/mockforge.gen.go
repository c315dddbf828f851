// Code generated by MockGen. DO NOT EDIT.
// Source: forge.go
//
// Generated by this command:
//
//	mockgen -source=forge.go -destination=mockforge.gen.go -package=forge
//

// Package forge is a generated GoMock package.
package forge

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockForge is a mock of Forge interface.
type MockForge struct {
	ctrl     *gomock.Controller
	recorder *MockForgeMockRecorder
}

// MockForgeMockRecorder is the mock recorder for MockForge.
type MockForgeMockRecorder struct {
	mock *MockForge
}

// NewMockForge creates a new mock instance.
func NewMockForge(ctrl *gomock.Controller) *MockForge {
	mock := &MockForge{ctrl: ctrl}
	mock.recorder = &MockForgeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockForge) EXPECT() *MockForgeMockRecorder {
	return m.recorder
}

// CreateIssue mocks base method.
func (m *MockForge) CreateIssue(ref RepoRef, title, body string, labels []string) (*IssueInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIssue", ref, title, body, labels)
	ret0, _ := ret[0].(*IssueInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIssue indicates an expected call of CreateIssue.
func (mr *MockForgeMockRecorder) CreateIssue(ref, title, body, labels any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIssue", reflect.TypeOf((*MockForge)(nil).CreateIssue), ref, title, body, labels)
}

// CreatePullRequest mocks base method.
func (m *MockForge) CreatePullRequest(ref RepoRef, params CreatePullRequestParams) (*PullRequestInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePullRequest", ref, params)
	ret0, _ := ret[0].(*PullRequestInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePullRequest indicates an expected call of CreatePullRequest.
func (mr *MockForgeMockRecorder) CreatePullRequest(ref, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePullRequest", reflect.TypeOf((*MockForge)(nil).CreatePullRequest), ref, params)
}

// FindOpenPullRequest mocks base method.
func (m *MockForge) FindOpenPullRequest(ref RepoRef, head string) (*PullRequestInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindOpenPullRequest", ref, head)
	ret0, _ := ret[0].(*PullRequestInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindOpenPullRequest indicates an expected call of FindOpenPullRequest.
func (mr *MockForgeMockRecorder) FindOpenPullRequest(ref, head any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindOpenPullRequest", reflect.TypeOf((*MockForge)(nil).FindOpenPullRequest), ref, head)
}

// GetIssue mocks base method.
func (m *MockForge) GetIssue(ref RepoRef, number int) (*IssueInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIssue", ref, number)
	ret0, _ := ret[0].(*IssueInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIssue indicates an expected call of GetIssue.
func (mr *MockForgeMockRecorder) GetIssue(ref, number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIssue", reflect.TypeOf((*MockForge)(nil).GetIssue), ref, number)
}

// Name mocks base method.
func (m *MockForge) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockForgeMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockForge)(nil).Name))
}

// RepoFromRemote mocks base method.
func (m *MockForge) RepoFromRemote(repoPath string) (RepoRef, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RepoFromRemote", repoPath)
	ret0, _ := ret[0].(RepoRef)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RepoFromRemote indicates an expected call of RepoFromRemote.
func (mr *MockForgeMockRecorder) RepoFromRemote(repoPath any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RepoFromRemote", reflect.TypeOf((*MockForge)(nil).RepoFromRemote), repoPath)
}

// ValidateForgeRepository mocks base method.
func (m *MockForge) ValidateForgeRepository(repoPath string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateForgeRepository", repoPath)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidateForgeRepository indicates an expected call of ValidateForgeRepository.
func (mr *MockForgeMockRecorder) ValidateForgeRepository(repoPath any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateForgeRepository", reflect.TypeOf((*MockForge)(nil).ValidateForgeRepository), repoPath)
}

// MockManagerInterface is a mock of ManagerInterface interface.
type MockManagerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockManagerInterfaceMockRecorder
}

// MockManagerInterfaceMockRecorder is the mock recorder for MockManagerInterface.
type MockManagerInterfaceMockRecorder struct {
	mock *MockManagerInterface
}

// NewMockManagerInterface creates a new mock instance.
func NewMockManagerInterface(ctrl *gomock.Controller) *MockManagerInterface {
	mock := &MockManagerInterface{ctrl: ctrl}
	mock.recorder = &MockManagerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockManagerInterface) EXPECT() *MockManagerInterfaceMockRecorder {
	return m.recorder
}

// GetForge mocks base method.
func (m *MockManagerInterface) GetForge(name string) (Forge, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForge", name)
	ret0, _ := ret[0].(Forge)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForge indicates an expected call of GetForge.
func (mr *MockManagerInterfaceMockRecorder) GetForge(name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForge", reflect.TypeOf((*MockManagerInterface)(nil).GetForge), name)
}

// GetForgeForRepository mocks base method.
func (m *MockManagerInterface) GetForgeForRepository(repoPath string) (Forge, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForgeForRepository", repoPath)
	ret0, _ := ret[0].(Forge)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForgeForRepository indicates an expected call of GetForgeForRepository.
func (mr *MockManagerInterfaceMockRecorder) GetForgeForRepository(repoPath any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForgeForRepository", reflect.TypeOf((*MockManagerInterface)(nil).GetForgeForRepository), repoPath)
}
