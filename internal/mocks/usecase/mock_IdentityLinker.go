// Mocks in mockery's expecter layout, matching the output of mockery with .mockery.yaml.

package usecase

import (
	context "context"
	entity "seely/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockIdentityLinker is a mock type for the IdentityLinker type
type MockIdentityLinker struct {
	mock.Mock
}

type MockIdentityLinker_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityLinker) EXPECT() *MockIdentityLinker_Expecter {
	return &MockIdentityLinker_Expecter{mock: &_m.Mock}
}

// UpsertFederated provides a mock function with given fields: ctx, username, externalSubjectID
func (_m *MockIdentityLinker) UpsertFederated(ctx context.Context, username string, externalSubjectID string) (*entity.User, error) {
	ret := _m.Called(ctx, username, externalSubjectID)

	if len(ret) == 0 {
		panic("no return value specified for UpsertFederated")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.User, error)); ok {
		return rf(ctx, username, externalSubjectID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *entity.User); ok {
		r0 = rf(ctx, username, externalSubjectID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, username, externalSubjectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentityLinker_UpsertFederated_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpsertFederated'
type MockIdentityLinker_UpsertFederated_Call struct {
	*mock.Call
}

// UpsertFederated is a helper method to define mock.On call
//   - ctx context.Context
//   - username string
//   - externalSubjectID string
func (_e *MockIdentityLinker_Expecter) UpsertFederated(ctx interface{}, username interface{}, externalSubjectID interface{}) *MockIdentityLinker_UpsertFederated_Call {
	return &MockIdentityLinker_UpsertFederated_Call{Call: _e.mock.On("UpsertFederated", ctx, username, externalSubjectID)}
}

func (_c *MockIdentityLinker_UpsertFederated_Call) Run(run func(ctx context.Context, username string, externalSubjectID string)) *MockIdentityLinker_UpsertFederated_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockIdentityLinker_UpsertFederated_Call) Return(_a0 *entity.User, _a1 error) *MockIdentityLinker_UpsertFederated_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityLinker_UpsertFederated_Call) RunAndReturn(run func(context.Context, string, string) (*entity.User, error)) *MockIdentityLinker_UpsertFederated_Call {
	_c.Call.Return(run)
	return _c
}

// UpsertLocal provides a mock function with given fields: ctx, username, passwordHash, role
func (_m *MockIdentityLinker) UpsertLocal(ctx context.Context, username string, passwordHash string, role entity.Role) (*entity.User, error) {
	ret := _m.Called(ctx, username, passwordHash, role)

	if len(ret) == 0 {
		panic("no return value specified for UpsertLocal")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, entity.Role) (*entity.User, error)); ok {
		return rf(ctx, username, passwordHash, role)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, entity.Role) *entity.User); ok {
		r0 = rf(ctx, username, passwordHash, role)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, entity.Role) error); ok {
		r1 = rf(ctx, username, passwordHash, role)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentityLinker_UpsertLocal_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpsertLocal'
type MockIdentityLinker_UpsertLocal_Call struct {
	*mock.Call
}

// UpsertLocal is a helper method to define mock.On call
//   - ctx context.Context
//   - username string
//   - passwordHash string
//   - role entity.Role
func (_e *MockIdentityLinker_Expecter) UpsertLocal(ctx interface{}, username interface{}, passwordHash interface{}, role interface{}) *MockIdentityLinker_UpsertLocal_Call {
	return &MockIdentityLinker_UpsertLocal_Call{Call: _e.mock.On("UpsertLocal", ctx, username, passwordHash, role)}
}

func (_c *MockIdentityLinker_UpsertLocal_Call) Run(run func(ctx context.Context, username string, passwordHash string, role entity.Role)) *MockIdentityLinker_UpsertLocal_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(entity.Role))
	})
	return _c
}

func (_c *MockIdentityLinker_UpsertLocal_Call) Return(_a0 *entity.User, _a1 error) *MockIdentityLinker_UpsertLocal_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityLinker_UpsertLocal_Call) RunAndReturn(run func(context.Context, string, string, entity.Role) (*entity.User, error)) *MockIdentityLinker_UpsertLocal_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentityLinker creates a new instance of MockIdentityLinker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityLinker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityLinker {
	mock := &MockIdentityLinker{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
