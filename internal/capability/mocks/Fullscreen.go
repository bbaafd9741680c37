package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Fullscreen struct {
	mock.Mock
}

// Enter provides a mock function with given fields: ctx
func (_m *Fullscreen) Enter(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Exit provides a mock function with given fields: ctx
func (_m *Fullscreen) Exit(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
