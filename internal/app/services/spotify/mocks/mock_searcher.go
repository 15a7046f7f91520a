package mocks

import (
	context "context"

	search "github.com/angristan/spotify-search-provider/internal/app/search"
	mock "github.com/stretchr/testify/mock"
)

// MockSearcher is an autogenerated mock type for the Searcher type
type MockSearcher struct {
	mock.Mock
}

// Search provides a mock function with given fields: ctx, query, opts
func (_m *MockSearcher) Search(ctx context.Context, query string, opts search.Options) (search.Result, error) {
	ret := _m.Called(ctx, query, opts)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 search.Result
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, search.Options) (search.Result, error)); ok {
		return rf(ctx, query, opts)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, search.Options) search.Result); ok {
		r0 = rf(ctx, query, opts)
	} else {
		r0 = ret.Get(0).(search.Result)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, search.Options) error); ok {
		r1 = rf(ctx, query, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockSearcher creates a new instance of MockSearcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSearcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSearcher {
	mock := &MockSearcher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
