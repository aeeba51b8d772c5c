// Mocks in mockery's expecter layout, matching the output of mockery with .mockery.yaml.

package usecase

import (
	context "context"
	usecase "seely/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.LoginOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) *usecase.LoginOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.LoginOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAuthUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.LoginInput
func (_e *MockAuthUsecase_Expecter) Login(ctx interface{}, input interface{}) *MockAuthUsecase_Login_Call {
	return &MockAuthUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAuthUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockAuthUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LoginInput))
	})
	return _c
}

func (_c *MockAuthUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAuthUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)) *MockAuthUsecase_Login_Call {
	_c.Call.Return(run)
	return _c
}

// Refresh provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Refresh")
	}

	var r0 *usecase.RefreshOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RefreshInput) (*usecase.RefreshOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RefreshInput) *usecase.RefreshOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.RefreshOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.RefreshInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUsecase_Refresh_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Refresh'
type MockAuthUsecase_Refresh_Call struct {
	*mock.Call
}

// Refresh is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.RefreshInput
func (_e *MockAuthUsecase_Expecter) Refresh(ctx interface{}, input interface{}) *MockAuthUsecase_Refresh_Call {
	return &MockAuthUsecase_Refresh_Call{Call: _e.mock.On("Refresh", ctx, input)}
}

func (_c *MockAuthUsecase_Refresh_Call) Run(run func(ctx context.Context, input *usecase.RefreshInput)) *MockAuthUsecase_Refresh_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RefreshInput))
	})
	return _c
}

func (_c *MockAuthUsecase_Refresh_Call) Return(_a0 *usecase.RefreshOutput, _a1 error) *MockAuthUsecase_Refresh_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUsecase_Refresh_Call) RunAndReturn(run func(context.Context, *usecase.RefreshInput) (*usecase.RefreshOutput, error)) *MockAuthUsecase_Refresh_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	mock := &MockAuthUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
