// Mocks in mockery's expecter layout, matching the output of mockery with .mockery.yaml.

package service

import (
	mock "github.com/stretchr/testify/mock"
)

// MockFlowSecretGenerator is a mock type for the FlowSecretGenerator type
type MockFlowSecretGenerator struct {
	mock.Mock
}

type MockFlowSecretGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFlowSecretGenerator) EXPECT() *MockFlowSecretGenerator_Expecter {
	return &MockFlowSecretGenerator_Expecter{mock: &_m.Mock}
}

// NewCodeVerifier provides a mock function with no fields
func (_m *MockFlowSecretGenerator) NewCodeVerifier() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewCodeVerifier")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockFlowSecretGenerator_NewCodeVerifier_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewCodeVerifier'
type MockFlowSecretGenerator_NewCodeVerifier_Call struct {
	*mock.Call
}

// NewCodeVerifier is a helper method to define mock.On call
func (_e *MockFlowSecretGenerator_Expecter) NewCodeVerifier() *MockFlowSecretGenerator_NewCodeVerifier_Call {
	return &MockFlowSecretGenerator_NewCodeVerifier_Call{Call: _e.mock.On("NewCodeVerifier")}
}

func (_c *MockFlowSecretGenerator_NewCodeVerifier_Call) Run(run func()) *MockFlowSecretGenerator_NewCodeVerifier_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockFlowSecretGenerator_NewCodeVerifier_Call) Return(_a0 string) *MockFlowSecretGenerator_NewCodeVerifier_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockFlowSecretGenerator_NewCodeVerifier_Call) RunAndReturn(run func() string) *MockFlowSecretGenerator_NewCodeVerifier_Call {
	_c.Call.Return(run)
	return _c
}

// NewState provides a mock function with no fields
func (_m *MockFlowSecretGenerator) NewState() (string, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewState")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func() (string, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFlowSecretGenerator_NewState_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewState'
type MockFlowSecretGenerator_NewState_Call struct {
	*mock.Call
}

// NewState is a helper method to define mock.On call
func (_e *MockFlowSecretGenerator_Expecter) NewState() *MockFlowSecretGenerator_NewState_Call {
	return &MockFlowSecretGenerator_NewState_Call{Call: _e.mock.On("NewState")}
}

func (_c *MockFlowSecretGenerator_NewState_Call) Run(run func()) *MockFlowSecretGenerator_NewState_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockFlowSecretGenerator_NewState_Call) Return(_a0 string, _a1 error) *MockFlowSecretGenerator_NewState_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFlowSecretGenerator_NewState_Call) RunAndReturn(run func() (string, error)) *MockFlowSecretGenerator_NewState_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockFlowSecretGenerator creates a new instance of MockFlowSecretGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFlowSecretGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFlowSecretGenerator {
	mock := &MockFlowSecretGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
