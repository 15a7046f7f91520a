package mocks

import (
	context "context"

	search "github.com/angristan/spotify-search-provider/internal/app/search"
	mock "github.com/stretchr/testify/mock"
)

// MockResolver is an autogenerated mock type for the Resolver type
type MockResolver struct {
	mock.Mock
}

// Track provides a mock function with given fields: ctx, id, requester
func (_m *MockResolver) Track(ctx context.Context, id string, requester interface{}) (search.Collection, error) {
	ret := _m.Called(ctx, id, requester)

	if len(ret) == 0 {
		panic("no return value specified for Track")
	}

	var r0 search.Collection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) (search.Collection, error)); ok {
		return rf(ctx, id, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) search.Collection); ok {
		r0 = rf(ctx, id, requester)
	} else {
		r0 = ret.Get(0).(search.Collection)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interface{}) error); ok {
		r1 = rf(ctx, id, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Album provides a mock function with given fields: ctx, id, requester
func (_m *MockResolver) Album(ctx context.Context, id string, requester interface{}) (search.Collection, error) {
	ret := _m.Called(ctx, id, requester)

	if len(ret) == 0 {
		panic("no return value specified for Album")
	}

	var r0 search.Collection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) (search.Collection, error)); ok {
		return rf(ctx, id, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) search.Collection); ok {
		r0 = rf(ctx, id, requester)
	} else {
		r0 = ret.Get(0).(search.Collection)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interface{}) error); ok {
		r1 = rf(ctx, id, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Artist provides a mock function with given fields: ctx, id, requester
func (_m *MockResolver) Artist(ctx context.Context, id string, requester interface{}) (search.Collection, error) {
	ret := _m.Called(ctx, id, requester)

	if len(ret) == 0 {
		panic("no return value specified for Artist")
	}

	var r0 search.Collection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) (search.Collection, error)); ok {
		return rf(ctx, id, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) search.Collection); ok {
		r0 = rf(ctx, id, requester)
	} else {
		r0 = ret.Get(0).(search.Collection)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interface{}) error); ok {
		r1 = rf(ctx, id, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Playlist provides a mock function with given fields: ctx, id, requester
func (_m *MockResolver) Playlist(ctx context.Context, id string, requester interface{}) (search.Collection, error) {
	ret := _m.Called(ctx, id, requester)

	if len(ret) == 0 {
		panic("no return value specified for Playlist")
	}

	var r0 search.Collection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) (search.Collection, error)); ok {
		return rf(ctx, id, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) search.Collection); ok {
		r0 = rf(ctx, id, requester)
	} else {
		r0 = ret.Get(0).(search.Collection)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interface{}) error); ok {
		r1 = rf(ctx, id, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SearchTracks provides a mock function with given fields: ctx, query, requester
func (_m *MockResolver) SearchTracks(ctx context.Context, query string, requester interface{}) (search.Collection, error) {
	ret := _m.Called(ctx, query, requester)

	if len(ret) == 0 {
		panic("no return value specified for SearchTracks")
	}

	var r0 search.Collection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) (search.Collection, error)); ok {
		return rf(ctx, query, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interface{}) search.Collection); ok {
		r0 = rf(ctx, query, requester)
	} else {
		r0 = ret.Get(0).(search.Collection)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interface{}) error); ok {
		r1 = rf(ctx, query, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockResolver creates a new instance of MockResolver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResolver {
	mock := &MockResolver{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
