// Mocks in mockery's expecter layout, matching the output of mockery with .mockery.yaml.

package service

import (
	context "context"
	entity "seely/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a mock type for the IdentityProvider type
type MockIdentityProvider struct {
	mock.Mock
}

type MockIdentityProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityProvider) EXPECT() *MockIdentityProvider_Expecter {
	return &MockIdentityProvider_Expecter{mock: &_m.Mock}
}

// AuthCodeURL provides a mock function with given fields: ctx, state, codeVerifier
func (_m *MockIdentityProvider) AuthCodeURL(ctx context.Context, state string, codeVerifier string) (string, error) {
	ret := _m.Called(ctx, state, codeVerifier)

	if len(ret) == 0 {
		panic("no return value specified for AuthCodeURL")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return rf(ctx, state, codeVerifier)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) string); ok {
		r0 = rf(ctx, state, codeVerifier)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, state, codeVerifier)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentityProvider_AuthCodeURL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AuthCodeURL'
type MockIdentityProvider_AuthCodeURL_Call struct {
	*mock.Call
}

// AuthCodeURL is a helper method to define mock.On call
//   - ctx context.Context
//   - state string
//   - codeVerifier string
func (_e *MockIdentityProvider_Expecter) AuthCodeURL(ctx interface{}, state interface{}, codeVerifier interface{}) *MockIdentityProvider_AuthCodeURL_Call {
	return &MockIdentityProvider_AuthCodeURL_Call{Call: _e.mock.On("AuthCodeURL", ctx, state, codeVerifier)}
}

func (_c *MockIdentityProvider_AuthCodeURL_Call) Run(run func(ctx context.Context, state string, codeVerifier string)) *MockIdentityProvider_AuthCodeURL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockIdentityProvider_AuthCodeURL_Call) Return(_a0 string, _a1 error) *MockIdentityProvider_AuthCodeURL_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityProvider_AuthCodeURL_Call) RunAndReturn(run func(context.Context, string, string) (string, error)) *MockIdentityProvider_AuthCodeURL_Call {
	_c.Call.Return(run)
	return _c
}

// EndSessionURL provides a mock function with given fields: ctx, idTokenHint
func (_m *MockIdentityProvider) EndSessionURL(ctx context.Context, idTokenHint string) (string, error) {
	ret := _m.Called(ctx, idTokenHint)

	if len(ret) == 0 {
		panic("no return value specified for EndSessionURL")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, idTokenHint)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, idTokenHint)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, idTokenHint)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentityProvider_EndSessionURL_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'EndSessionURL'
type MockIdentityProvider_EndSessionURL_Call struct {
	*mock.Call
}

// EndSessionURL is a helper method to define mock.On call
//   - ctx context.Context
//   - idTokenHint string
func (_e *MockIdentityProvider_Expecter) EndSessionURL(ctx interface{}, idTokenHint interface{}) *MockIdentityProvider_EndSessionURL_Call {
	return &MockIdentityProvider_EndSessionURL_Call{Call: _e.mock.On("EndSessionURL", ctx, idTokenHint)}
}

func (_c *MockIdentityProvider_EndSessionURL_Call) Run(run func(ctx context.Context, idTokenHint string)) *MockIdentityProvider_EndSessionURL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockIdentityProvider_EndSessionURL_Call) Return(_a0 string, _a1 error) *MockIdentityProvider_EndSessionURL_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityProvider_EndSessionURL_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockIdentityProvider_EndSessionURL_Call {
	_c.Call.Return(run)
	return _c
}

// Exchange provides a mock function with given fields: ctx, code, codeVerifier
func (_m *MockIdentityProvider) Exchange(ctx context.Context, code string, codeVerifier string) (*entity.FederatedIdentity, error) {
	ret := _m.Called(ctx, code, codeVerifier)

	if len(ret) == 0 {
		panic("no return value specified for Exchange")
	}

	var r0 *entity.FederatedIdentity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.FederatedIdentity, error)); ok {
		return rf(ctx, code, codeVerifier)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *entity.FederatedIdentity); ok {
		r0 = rf(ctx, code, codeVerifier)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.FederatedIdentity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, code, codeVerifier)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentityProvider_Exchange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Exchange'
type MockIdentityProvider_Exchange_Call struct {
	*mock.Call
}

// Exchange is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - codeVerifier string
func (_e *MockIdentityProvider_Expecter) Exchange(ctx interface{}, code interface{}, codeVerifier interface{}) *MockIdentityProvider_Exchange_Call {
	return &MockIdentityProvider_Exchange_Call{Call: _e.mock.On("Exchange", ctx, code, codeVerifier)}
}

func (_c *MockIdentityProvider_Exchange_Call) Run(run func(ctx context.Context, code string, codeVerifier string)) *MockIdentityProvider_Exchange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockIdentityProvider_Exchange_Call) Return(_a0 *entity.FederatedIdentity, _a1 error) *MockIdentityProvider_Exchange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityProvider_Exchange_Call) RunAndReturn(run func(context.Context, string, string) (*entity.FederatedIdentity, error)) *MockIdentityProvider_Exchange_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentityProvider creates a new instance of MockIdentityProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityProvider {
	mock := &MockIdentityProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
