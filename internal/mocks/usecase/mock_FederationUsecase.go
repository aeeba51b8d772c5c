// Mocks in mockery's expecter layout, matching the output of mockery with .mockery.yaml.

package usecase

import (
	context "context"
	entity "seely/internal/domain/entity"
	usecase "seely/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockFederationUsecase is a mock type for the FederationUsecase type
type MockFederationUsecase struct {
	mock.Mock
}

type MockFederationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFederationUsecase) EXPECT() *MockFederationUsecase_Expecter {
	return &MockFederationUsecase_Expecter{mock: &_m.Mock}
}

// BuildAuthorizationRequest provides a mock function with given fields: ctx
func (_m *MockFederationUsecase) BuildAuthorizationRequest(ctx context.Context) (*entity.AuthorizationRequest, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for BuildAuthorizationRequest")
	}

	var r0 *entity.AuthorizationRequest
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*entity.AuthorizationRequest, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *entity.AuthorizationRequest); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.AuthorizationRequest)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFederationUsecase_BuildAuthorizationRequest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BuildAuthorizationRequest'
type MockFederationUsecase_BuildAuthorizationRequest_Call struct {
	*mock.Call
}

// BuildAuthorizationRequest is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockFederationUsecase_Expecter) BuildAuthorizationRequest(ctx interface{}) *MockFederationUsecase_BuildAuthorizationRequest_Call {
	return &MockFederationUsecase_BuildAuthorizationRequest_Call{Call: _e.mock.On("BuildAuthorizationRequest", ctx)}
}

func (_c *MockFederationUsecase_BuildAuthorizationRequest_Call) Run(run func(ctx context.Context)) *MockFederationUsecase_BuildAuthorizationRequest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockFederationUsecase_BuildAuthorizationRequest_Call) Return(_a0 *entity.AuthorizationRequest, _a1 error) *MockFederationUsecase_BuildAuthorizationRequest_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFederationUsecase_BuildAuthorizationRequest_Call) RunAndReturn(run func(context.Context) (*entity.AuthorizationRequest, error)) *MockFederationUsecase_BuildAuthorizationRequest_Call {
	_c.Call.Return(run)
	return _c
}

// BuildLogoutURL provides a mock function with given fields: ctx, idToken
func (_m *MockFederationUsecase) BuildLogoutURL(ctx context.Context, idToken string) (string, error) {
	ret := _m.Called(ctx, idToken)

	if len(ret) == 0 {
		panic("no return value specified for BuildLogoutURL")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, idToken)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, idToken)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, idToken)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFederationUsecase_BuildLogoutURL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BuildLogoutURL'
type MockFederationUsecase_BuildLogoutURL_Call struct {
	*mock.Call
}

// BuildLogoutURL is a helper method to define mock.On call
//   - ctx context.Context
//   - idToken string
func (_e *MockFederationUsecase_Expecter) BuildLogoutURL(ctx interface{}, idToken interface{}) *MockFederationUsecase_BuildLogoutURL_Call {
	return &MockFederationUsecase_BuildLogoutURL_Call{Call: _e.mock.On("BuildLogoutURL", ctx, idToken)}
}

func (_c *MockFederationUsecase_BuildLogoutURL_Call) Run(run func(ctx context.Context, idToken string)) *MockFederationUsecase_BuildLogoutURL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockFederationUsecase_BuildLogoutURL_Call) Return(_a0 string, _a1 error) *MockFederationUsecase_BuildLogoutURL_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFederationUsecase_BuildLogoutURL_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockFederationUsecase_BuildLogoutURL_Call {
	_c.Call.Return(run)
	return _c
}

// HandleCallback provides a mock function with given fields: ctx, input
func (_m *MockFederationUsecase) HandleCallback(ctx context.Context, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for HandleCallback")
	}

	var r0 *usecase.CallbackOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CallbackInput) (*usecase.CallbackOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CallbackInput) *usecase.CallbackOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.CallbackOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.CallbackInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFederationUsecase_HandleCallback_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HandleCallback'
type MockFederationUsecase_HandleCallback_Call struct {
	*mock.Call
}

// HandleCallback is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.CallbackInput
func (_e *MockFederationUsecase_Expecter) HandleCallback(ctx interface{}, input interface{}) *MockFederationUsecase_HandleCallback_Call {
	return &MockFederationUsecase_HandleCallback_Call{Call: _e.mock.On("HandleCallback", ctx, input)}
}

func (_c *MockFederationUsecase_HandleCallback_Call) Run(run func(ctx context.Context, input *usecase.CallbackInput)) *MockFederationUsecase_HandleCallback_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.CallbackInput))
	})
	return _c
}

func (_c *MockFederationUsecase_HandleCallback_Call) Return(_a0 *usecase.CallbackOutput, _a1 error) *MockFederationUsecase_HandleCallback_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFederationUsecase_HandleCallback_Call) RunAndReturn(run func(context.Context, *usecase.CallbackInput) (*usecase.CallbackOutput, error)) *MockFederationUsecase_HandleCallback_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockFederationUsecase creates a new instance of MockFederationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFederationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFederationUsecase {
	mock := &MockFederationUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
