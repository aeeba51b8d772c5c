// Mocks in mockery's expecter layout, matching the output of mockery with .mockery.yaml.

package service

import (
	entity "seely/internal/domain/entity"
	service "seely/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// Issue provides a mock function with given fields: identity
func (_m *MockTokenService) Issue(identity service.Identity) (*entity.TokenPair, error) {
	ret := _m.Called(identity)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 *entity.TokenPair
	var r1 error
	if rf, ok := ret.Get(0).(func(service.Identity) (*entity.TokenPair, error)); ok {
		return rf(identity)
	}
	if rf, ok := ret.Get(0).(func(service.Identity) *entity.TokenPair); ok {
		r0 = rf(identity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.TokenPair)
		}
	}

	if rf, ok := ret.Get(1).(func(service.Identity) error); ok {
		r1 = rf(identity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Issue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Issue'
type MockTokenService_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call
//   - identity service.Identity
func (_e *MockTokenService_Expecter) Issue(identity interface{}) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", identity)}
}

func (_c *MockTokenService_Issue_Call) Run(run func(identity service.Identity)) *MockTokenService_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(service.Identity))
	})
	return _c
}

func (_c *MockTokenService_Issue_Call) Return(_a0 *entity.TokenPair, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_Issue_Call) RunAndReturn(run func(service.Identity) (*entity.TokenPair, error)) *MockTokenService_Issue_Call {
	_c.Call.Return(run)
	return _c
}

// VerifyAccessToken provides a mock function with given fields: token
func (_m *MockTokenService) VerifyAccessToken(token string) (*service.Claims, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for VerifyAccessToken")
	}

	var r0 *service.Claims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.Claims)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_VerifyAccessToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyAccessToken'
type MockTokenService_VerifyAccessToken_Call struct {
	*mock.Call
}

// VerifyAccessToken is a helper method to define mock.On call
//   - token string
func (_e *MockTokenService_Expecter) VerifyAccessToken(token interface{}) *MockTokenService_VerifyAccessToken_Call {
	return &MockTokenService_VerifyAccessToken_Call{Call: _e.mock.On("VerifyAccessToken", token)}
}

func (_c *MockTokenService_VerifyAccessToken_Call) Run(run func(token string)) *MockTokenService_VerifyAccessToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_VerifyAccessToken_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_VerifyAccessToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_VerifyAccessToken_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_VerifyAccessToken_Call {
	_c.Call.Return(run)
	return _c
}

// VerifyRefreshToken provides a mock function with given fields: token
func (_m *MockTokenService) VerifyRefreshToken(token string) (*service.Claims, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for VerifyRefreshToken")
	}

	var r0 *service.Claims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.Claims)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_VerifyRefreshToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyRefreshToken'
type MockTokenService_VerifyRefreshToken_Call struct {
	*mock.Call
}

// VerifyRefreshToken is a helper method to define mock.On call
//   - token string
func (_e *MockTokenService_Expecter) VerifyRefreshToken(token interface{}) *MockTokenService_VerifyRefreshToken_Call {
	return &MockTokenService_VerifyRefreshToken_Call{Call: _e.mock.On("VerifyRefreshToken", token)}
}

func (_c *MockTokenService_VerifyRefreshToken_Call) Run(run func(token string)) *MockTokenService_VerifyRefreshToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_VerifyRefreshToken_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_VerifyRefreshToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_VerifyRefreshToken_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_VerifyRefreshToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
