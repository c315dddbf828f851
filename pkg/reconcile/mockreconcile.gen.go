// Code generated by MockGen. DO NOT EDIT.
// Source: reconcile.go
//
// Generated by this command:
//
//	mockgen -source=reconcile.go -destination=mockreconcile.gen.go -package=reconcile
//

// Package reconcile is a generated GoMock package.
package reconcile

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockReconciler is a mock of Reconciler interface.
type MockReconciler struct {
	ctrl     *gomock.Controller
	recorder *MockReconcilerMockRecorder
}

// MockReconcilerMockRecorder is the mock recorder for MockReconciler.
type MockReconcilerMockRecorder struct {
	mock *MockReconciler
}

// NewMockReconciler creates a new mock instance.
func NewMockReconciler(ctrl *gomock.Controller) *MockReconciler {
	mock := &MockReconciler{ctrl: ctrl}
	mock.recorder = &MockReconcilerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReconciler) EXPECT() *MockReconcilerMockRecorder {
	return m.recorder
}

// Apply mocks base method.
func (m *MockReconciler) Apply(ctx context.Context, repoPath string, plan *Plan) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", ctx, repoPath, plan)
	ret0, _ := ret[0].(error)
	return ret0
}

// Apply indicates an expected call of Apply.
func (mr *MockReconcilerMockRecorder) Apply(ctx, repoPath, plan any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockReconciler)(nil).Apply), ctx, repoPath, plan)
}

// Plan mocks base method.
func (m *MockReconciler) Plan(ctx context.Context, repoPath string) (*Plan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Plan", ctx, repoPath)
	ret0, _ := ret[0].(*Plan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Plan indicates an expected call of Plan.
func (mr *MockReconcilerMockRecorder) Plan(ctx, repoPath any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Plan", reflect.TypeOf((*MockReconciler)(nil).Plan), ctx, repoPath)
}
