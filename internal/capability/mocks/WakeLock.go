package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"screenlight/internal/capability"
)

type WakeLock struct {
	mock.Mock
}

// Acquire provides a mock function with given fields: ctx
func (_m *WakeLock) Acquire(ctx context.Context) (capability.Handle, error) {
	ret := _m.Called(ctx)

	var r0 capability.Handle
	if rf, ok := ret.Get(0).(func(context.Context) capability.Handle); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(capability.Handle)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Release provides a mock function with given fields: ctx, h
func (_m *WakeLock) Release(ctx context.Context, h capability.Handle) error {
	ret := _m.Called(ctx, h)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, capability.Handle) error); ok {
		r0 = rf(ctx, h)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Handle is a capability.Handle whose Done channel the test controls.
type Handle struct {
	Name string
	done chan struct{}
}

// NewHandle returns an open handle.
func NewHandle(name string) *Handle {
	return &Handle{Name: name, done: make(chan struct{})}
}

// Done implements capability.Handle.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Revoke closes the Done channel, simulating the platform dropping the lock.
func (h *Handle) Revoke() { close(h.done) }
