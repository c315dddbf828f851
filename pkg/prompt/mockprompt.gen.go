// Code generated by MockGen. DO NOT EDIT.
// Source: prompt.go
//
// Generated by this command:
//
//	mockgen -source=prompt.go -destination=mockprompt.gen.go -package=prompt
//

// Package prompt is a generated GoMock package.
package prompt

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPrompter is a mock of Prompter interface.
type MockPrompter struct {
	ctrl     *gomock.Controller
	recorder *MockPrompterMockRecorder
}

// MockPrompterMockRecorder is the mock recorder for MockPrompter.
type MockPrompterMockRecorder struct {
	mock *MockPrompter
}

// NewMockPrompter creates a new mock instance.
func NewMockPrompter(ctrl *gomock.Controller) *MockPrompter {
	mock := &MockPrompter{ctrl: ctrl}
	mock.recorder = &MockPrompterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPrompter) EXPECT() *MockPrompterMockRecorder {
	return m.recorder
}

// PromptForConfirmation mocks base method.
func (m *MockPrompter) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PromptForConfirmation", message, defaultYes)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PromptForConfirmation indicates an expected call of PromptForConfirmation.
func (mr *MockPrompterMockRecorder) PromptForConfirmation(message, defaultYes any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PromptForConfirmation", reflect.TypeOf((*MockPrompter)(nil).PromptForConfirmation), message, defaultYes)
}

// PromptForIdeasDir mocks base method.
func (m *MockPrompter) PromptForIdeasDir(defaultIdeasDir string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PromptForIdeasDir", defaultIdeasDir)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PromptForIdeasDir indicates an expected call of PromptForIdeasDir.
func (mr *MockPrompterMockRecorder) PromptForIdeasDir(defaultIdeasDir any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PromptForIdeasDir", reflect.TypeOf((*MockPrompter)(nil).PromptForIdeasDir), defaultIdeasDir)
}

// PromptForProject mocks base method.
func (m *MockPrompter) PromptForProject() (string, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PromptForProject")
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// PromptForProject indicates an expected call of PromptForProject.
func (mr *MockPrompterMockRecorder) PromptForProject() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PromptForProject", reflect.TypeOf((*MockPrompter)(nil).PromptForProject))
}

// PromptForStatusFile mocks base method.
func (m *MockPrompter) PromptForStatusFile(defaultStatusFile string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PromptForStatusFile", defaultStatusFile)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PromptForStatusFile indicates an expected call of PromptForStatusFile.
func (mr *MockPrompterMockRecorder) PromptForStatusFile(defaultStatusFile any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PromptForStatusFile", reflect.TypeOf((*MockPrompter)(nil).PromptForStatusFile), defaultStatusFile)
}

// PromptSelectIdea mocks base method.
func (m *MockPrompter) PromptSelectIdea(choices []IdeaChoice) (IdeaChoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PromptSelectIdea", choices)
	ret0, _ := ret[0].(IdeaChoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PromptSelectIdea indicates an expected call of PromptSelectIdea.
func (mr *MockPrompterMockRecorder) PromptSelectIdea(choices any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PromptSelectIdea", reflect.TypeOf((*MockPrompter)(nil).PromptSelectIdea), choices)
}
